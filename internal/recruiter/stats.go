package recruiter

import "github.com/spigell/interview-panel/internal/platform"

type Stats struct {
	Total     int
	Pending   int
	Assigned  int
	Completed int
}

func ComputeStats(participants []*platform.Participant) Stats {
	s := Stats{Total: len(participants)}
	for _, p := range participants {
		switch p.Status {
		case platform.ParticipantPending:
			s.Pending++
		case platform.ParticipantAssigned:
			s.Assigned++
		case platform.ParticipantCompleted:
			s.Completed++
		}
	}
	return s
}
