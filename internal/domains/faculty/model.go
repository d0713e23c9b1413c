package faculty

import "fmt"

// Member is a faculty roster entry. The sequence number is assigned by
// the user and is the only stable key for update and delete. Deleting
// a member never touches stored minutes: minutes keep a point-in-time
// copy of their attendees.
type Member struct {
	SeqNo      int    `json:"seq_no"`
	Department string `json:"department"`
	Rank       Rank   `json:"rank"`
	Name       string `json:"name"`
}

// Rank enum. Values are stored as-is in the roster tab.
type Rank string

const (
	RankProfessor          Rank = "교수"
	RankAssociateProfessor Rank = "부교수"
	RankAssistantProfessor Rank = "조교수"
	RankLecturer           Rank = "강사"
)

// AllRanks returns all valid ranks
func AllRanks() []Rank {
	return []Rank{RankProfessor, RankAssociateProfessor, RankAssistantProfessor, RankLecturer}
}

// IsValid reports whether the rank is one of the fixed enumeration.
func (r Rank) IsValid() bool {
	for _, v := range AllRanks() {
		if r == v {
			return true
		}
	}
	return false
}

// Option renders the member as a selector label: "Name (Dept/Rank)".
// The minutes attendee codec parses labels back with the same shape.
func (m Member) Option() string {
	return fmt.Sprintf("%s (%s/%s)", m.Name, m.Department, m.Rank)
}
