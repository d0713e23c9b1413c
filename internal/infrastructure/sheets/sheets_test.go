package sheets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRow(t *testing.T) {
	row := []interface{}{int64(3), int32(7), float64(12), 2.5, "텍스트", nil, true}

	cleaned := NormalizeRow(row)

	assert.Equal(t, 3, cleaned[0])
	assert.Equal(t, 7, cleaned[1])
	assert.Equal(t, 12, cleaned[2])
	assert.Equal(t, "2.5", cleaned[3])
	assert.Equal(t, "텍스트", cleaned[4])
	assert.Equal(t, "", cleaned[5])
	assert.Equal(t, "true", cleaned[6])
}

func TestColumnIndexToLetter(t *testing.T) {
	cases := map[int]string{
		0:  "A",
		1:  "B",
		25: "Z",
		26: "AA",
		27: "AB",
		51: "AZ",
		52: "BA",
	}
	for index, want := range cases {
		assert.Equal(t, want, columnIndexToLetter(index), "index %d", index)
	}
}

func TestHeaderForCopies(t *testing.T) {
	header := HeaderFor(TabMinutes)
	assert.Equal(t, "ID", header[0])

	header[0] = "mutated"
	assert.Equal(t, "ID", HeaderFor(TabMinutes)[0])
}
