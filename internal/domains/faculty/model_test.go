package faculty

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankIsValid(t *testing.T) {
	for _, r := range AllRanks() {
		assert.True(t, r.IsValid(), "rank %q", r)
	}

	assert.False(t, Rank("총장").IsValid())
	assert.False(t, Rank("").IsValid())
}

func TestMemberOption(t *testing.T) {
	m := Member{SeqNo: 1, Department: "컴퓨터공학과", Rank: RankProfessor, Name: "김철수"}
	assert.Equal(t, "김철수 (컴퓨터공학과/교수)", m.Option())
}

func TestCreateRequestValidate(t *testing.T) {
	valid := CreateRequest{Department: "컴퓨터공학과", Rank: "교수", Name: "김철수"}
	assert.NoError(t, valid.Validate())

	badRank := valid
	badRank.Rank = "총장"
	assert.Error(t, badRank.Validate())

	noName := valid
	noName.Name = ""
	assert.Error(t, noName.Validate())
}
