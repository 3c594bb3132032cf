package services

import "vo-server/models"

// voteWeight maps a vote to an attendance weight. Total over every input:
// yes=1.0, ifNeedBe=0.5, everything else (including no vote at all)=0.
func voteWeight(vote models.Vote, hasVote bool) float64 {
	if !hasVote {
		return 0
	}
	switch vote.Type {
	case models.VoteYes:
		return 1.0
	case models.VoteIfNeedBe:
		return 0.5
	default:
		return 0
	}
}

// weightParticipants derives attendance weights from the votes for the
// selected date. Participants without a starting location are excluded
// here, before weighting, so a missing location is never conflated with a
// zero-weight vote.
func weightParticipants(participants []models.Participant, selectedDateID string) []models.WeightedParticipant {
	weighted := make([]models.WeightedParticipant, 0, len(participants))
	for _, p := range participants {
		if !p.HasLocation() {
			continue
		}
		vote, ok := p.VoteFor(selectedDateID)
		weighted = append(weighted, models.WeightedParticipant{
			ID:            p.ID,
			Name:          p.Name,
			Weight:        voteWeight(vote, ok),
			Location:      *p.StartLocation,
			TransportMode: models.ParseTransportMode(string(p.TransportMode)),
		})
	}
	return weighted
}
