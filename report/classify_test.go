package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func classifyOne(t *testing.T, line string, inSpecs bool) Classification {
	t.Helper()
	return Classify([]string{line}, 0, inSpecs)
}

func TestClassifyMarkers(t *testing.T) {
	assert.Equal(t, LineTestHeader, classifyOne(t, "'Test Type,Test Description", false).Kind)
	assert.Equal(t, LineTimestamp, classifyOne(t, "'Time Stamp", false).Kind)
	assert.Equal(t, LineAccessSpecStart, classifyOne(t, "'Access specifications", false).Kind)
	assert.Equal(t, LineAccessSpecEnd, classifyOne(t, "'End access specifications", false).Kind)

	// Markers are exact and case-sensitive.
	assert.Equal(t, LineNone, classifyOne(t, "'time stamp", false).Kind)
	assert.Equal(t, LineNone, classifyOne(t, "'Test Type,Test Description,extra", false).Kind)

	// Leading whitespace is trimmed before comparison.
	assert.Equal(t, LineTimestamp, classifyOne(t, "  'Time Stamp", false).Kind)
}

func TestClassifyAccessSpecGating(t *testing.T) {
	pair := "'Access specification name,default assignment"
	data := "512,100,67,100,0,1,0,0,"

	assert.Equal(t, LineAccessSpecNamePair, classifyOne(t, pair, true).Kind)
	assert.Equal(t, LineAccessSpecData, classifyOne(t, data, true).Kind)

	// Outside the section neither is recognized.
	assert.Equal(t, LineNone, classifyOne(t, pair, false).Kind)
	assert.Equal(t, LineNone, classifyOne(t, data, false).Kind)
}

func TestClassifyAccessSpecDataShape(t *testing.T) {
	// Exactly eight integers, each followed by a comma.
	assert.Equal(t, LineNone, classifyOne(t, "512,100,67,100,0,1,0,0", true).Kind, "no trailing comma")
	assert.Equal(t, LineNone, classifyOne(t, "512,100,67,100,0,1,0,", true).Kind, "seven groups")
	assert.Equal(t, LineNone, classifyOne(t, "512,100,67,100,0,1,0,0,0,", true).Kind, "nine groups")
	assert.Equal(t, LineNone, classifyOne(t, "512,100,-1,100,0,1,0,0,", true).Kind, "negative")
	assert.Equal(t, LineNone, classifyOne(t, "512,100,6.7,100,0,1,0,0,", true).Kind, "float")
}

func TestClassifyResultRows(t *testing.T) {
	for first, want := range map[string]TargetKind{
		"ALL":       TargetAll,
		"MANAGER":   TargetManager,
		"PROCESSOR": TargetProcessor,
		"WORKER":    TargetWorker,
	} {
		c := classifyOne(t, first+",name,spec,1,2,3", false)
		assert.Equal(t, LineResultRow, c.Kind)
		assert.Equal(t, want, c.Target)
	}

	// The whole first field must match, case-sensitively.
	assert.Equal(t, LineNone, classifyOne(t, "ALLX,1,2", false).Kind)
	assert.Equal(t, LineNone, classifyOne(t, "all,1,2", false).Kind)
	assert.Equal(t, LineNone, classifyOne(t, "WORKERS,1,2", false).Kind)

	// Result rows are recognized inside the access-spec section too.
	assert.Equal(t, LineResultRow, classifyOne(t, "ALL,x,y", true).Kind)
}
