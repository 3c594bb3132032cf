package models

import "strings"

// VoteType is the normalized vote a participant cast for a poll option.
type VoteType string

const (
	VoteYes      VoteType = "yes"
	VoteIfNeedBe VoteType = "ifNeedBe"
	VoteNo       VoteType = "no"
)

// ParseVoteType normalizes the vote labels seen across poll clients.
// "maybe" is an alias of "ifNeedBe". Anything unknown counts as no vote.
func ParseVoteType(s string) VoteType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes":
		return VoteYes
	case "ifneedbe", "maybe":
		return VoteIfNeedBe
	case "no":
		return VoteNo
	default:
		return VoteNo
	}
}

// TransportMode selects the travel mode used for a participant's matrix rows.
type TransportMode string

const (
	TransportDriving   TransportMode = "driving"
	TransportWalking   TransportMode = "walking"
	TransportBicycling TransportMode = "bicycling"
	TransportTransit   TransportMode = "transit"
)

// ParseTransportMode defaults to driving, matching the poll UI default.
func ParseTransportMode(s string) TransportMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "walking":
		return TransportWalking
	case "bicycling":
		return TransportBicycling
	case "transit":
		return TransportTransit
	default:
		return TransportDriving
	}
}

// ParticipantLocation is a participant's starting point.
type ParticipantLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address,omitempty"`
}

// Vote is a participant's vote for a single poll option (a candidate date).
type Vote struct {
	OptionID string   `json:"optionId"`
	Type     VoteType `json:"type"`
}

// Participant is the optimizer's view of a poll participant. Built fresh
// from poll rows for each optimization call; never persisted here.
type Participant struct {
	ID            string               `json:"id"`
	Name          string               `json:"name"`
	StartLocation *ParticipantLocation `json:"startLocation,omitempty"`
	TransportMode TransportMode        `json:"transportMode,omitempty"`
	Votes         []Vote               `json:"votes,omitempty"`
}

// HasLocation reports whether the participant supplied a starting location.
func (p Participant) HasLocation() bool {
	return p.StartLocation != nil
}

// VoteFor returns the participant's vote for the given option, if any.
func (p Participant) VoteFor(optionID string) (Vote, bool) {
	for _, v := range p.Votes {
		if v.OptionID == optionID {
			return v, true
		}
	}
	return Vote{}, false
}

// WeightedParticipant pairs a located participant with the attendance
// weight derived from their vote for the selected date.
type WeightedParticipant struct {
	ID            string
	Name          string
	Weight        float64
	Location      ParticipantLocation
	TransportMode TransportMode
}

// Coordinates returns the participant's starting point as a lat/lng pair.
func (w WeightedParticipant) Coordinates() Coordinates {
	return Coordinates{Lat: w.Location.Latitude, Lng: w.Location.Longitude}
}
