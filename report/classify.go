package report

import (
	"regexp"
	"strings"
)

// LineKind is the category a single export line belongs to.
type LineKind int

const (
	LineNone LineKind = iota
	LineTestHeader
	LineTimestamp
	LineAccessSpecStart
	LineAccessSpecEnd
	LineAccessSpecNamePair
	LineAccessSpecData
	LineResultRow
)

// Marker lines as IOMeter writes them, leading quote included. All
// comparisons are exact and case-sensitive.
const (
	markerTestHeader = "'Test Type,Test Description"
	markerTimestamp  = "'Time Stamp"
	markerSpecStart  = "'Access specifications"
	markerSpecEnd    = "'End access specifications"
	markerSpecPair   = "'Access specification name,default assignment"
)

var (
	// "<integer>,<free text>" on the line after the test header.
	testTypeRe = regexp.MustCompile(`^(\d+),(.*)$`)
	// "<non-comma-token>,<integer>" on the line after the name pair marker.
	specPairRe = regexp.MustCompile(`^([^,]+),(\d+)$`)
	// Eight non-negative integers, each followed by a comma, nothing after.
	specDataRe = regexp.MustCompile(`^(\d+,){7}\d+,$`)
)

var targetKinds = map[string]TargetKind{
	"ALL":       TargetAll,
	"MANAGER":   TargetManager,
	"PROCESSOR": TargetProcessor,
	"WORKER":    TargetWorker,
}

// Classification is the outcome of classifying one line. Target is
// set only for LineResultRow.
type Classification struct {
	Kind   LineKind
	Target TargetKind
}

// Classify determines the category of lines[i]. Classification is
// line-local apart from the inAccessSpecs gate: the name-pair marker
// and the eight-integer data rows are only recognized inside the
// access-specifications section, while result rows are recognized
// anywhere. Marker checks use the trimmed line; the result-row check
// uses the first comma-separated field of the raw line, matching how
// the row is later split for decoding.
func Classify(lines []string, i int, inAccessSpecs bool) Classification {
	raw := lines[i]
	line := strings.TrimSpace(raw)

	switch line {
	case markerTestHeader:
		return Classification{Kind: LineTestHeader}
	case markerTimestamp:
		return Classification{Kind: LineTimestamp}
	case markerSpecStart:
		return Classification{Kind: LineAccessSpecStart}
	case markerSpecEnd:
		return Classification{Kind: LineAccessSpecEnd}
	}

	if inAccessSpecs {
		if line == markerSpecPair {
			return Classification{Kind: LineAccessSpecNamePair}
		}
		if specDataRe.MatchString(line) {
			return Classification{Kind: LineAccessSpecData}
		}
	}

	first, _, _ := strings.Cut(raw, ",")
	if kind, ok := targetKinds[first]; ok {
		return Classification{Kind: LineResultRow, Target: kind}
	}

	return Classification{Kind: LineNone}
}
