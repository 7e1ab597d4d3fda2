package report

import (
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Options controls how files are parsed.
type Options struct {
	// IncludeProcessors and IncludeWorkers gate the PROCESSOR and
	// WORKER tables. When false the rows are not decoded at all and
	// the corresponding slice stays empty.
	IncludeProcessors bool
	IncludeWorkers    bool

	Logger *zap.Logger
}

// DefaultOptions parses every row kind.
func DefaultOptions() Options {
	return Options{
		IncludeProcessors: true,
		IncludeWorkers:    true,
		Logger:            zap.NewNop(),
	}
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// assembler is the transient scan state for one file: the section
// gate plus the carried access-spec name pair. The pair persists
// across section boundaries; section counters exist only to notice
// when a data row consumes a pair from an earlier block.
type assembler struct {
	rec  *TestRecord
	opts Options

	inSpecs     bool
	specName    string
	specAssign  string
	pairSeen    bool
	section     int // increments on every section start
	pairSection int // section the carried pair was read in
}

// Parse scans the lines of one file and assembles a TestRecord. The
// scan is a single forward pass; lines that match nothing are
// skipped. On a row coercion failure the scan stops and the record
// assembled so far is returned together with a *CoercionError.
func Parse(fileName string, lines []string, opts Options) (*TestRecord, error) {
	a := &assembler{rec: newTestRecord(fileName), opts: opts}
	log := opts.logger()

	for i := range lines {
		c := Classify(lines, i, a.inSpecs)
		switch c.Kind {
		case LineNone:
			continue

		case LineTestHeader:
			// The values live on the next line. If it does not match,
			// the marker is ignored and the fields stay null.
			if i+1 >= len(lines) {
				continue
			}
			if m := testTypeRe.FindStringSubmatch(strings.TrimSpace(lines[i+1])); m != nil {
				tt, _ := strconv.Atoi(m[1])
				desc := m[2]
				a.rec.TestType = &tt
				a.rec.TestDescription = &desc
			}

		case LineTimestamp:
			if i+1 >= len(lines) {
				continue
			}
			ts := strings.TrimSpace(lines[i+1])
			a.rec.TimeStamp = &ts

		case LineAccessSpecStart:
			// Starts do not nest; a repeated start re-asserts the gate.
			a.inSpecs = true
			a.section++

		case LineAccessSpecEnd:
			a.inSpecs = false

		case LineAccessSpecNamePair:
			if i+1 >= len(lines) {
				continue
			}
			if m := specPairRe.FindStringSubmatch(strings.TrimSpace(lines[i+1])); m != nil {
				a.specName = m[1]
				a.specAssign = m[2]
				a.pairSeen = true
				a.pairSection = a.section
			}

		case LineAccessSpecData:
			a.appendAccessSpec(strings.TrimSpace(lines[i]), log)

		case LineResultRow:
			if err := a.appendResultRow(c.Target, lines[i], i); err != nil {
				return a.rec, err
			}
		}
	}

	return a.rec, nil
}

func (a *assembler) appendAccessSpec(line string, log *zap.Logger) {
	if a.pairSeen && a.pairSection != a.section {
		// The carried name pair came from an earlier block. The format
		// allows this, so the values are used as-is; only flag it.
		log.Warn("access specification row uses name pair from an earlier block",
			zap.String("file", a.rec.FileName),
			zap.String("name", a.specName))
	}

	parts := strings.Split(line, ",")
	spec := AccessSpecification{
		Name:              a.specName,
		DefaultAssignment: a.specAssign,
	}
	// The classifier guarantees eight integer fields and a trailing
	// empty field after the final comma.
	dst := []*int{
		&spec.Size, &spec.PercentOfSize, &spec.PercentReads, &spec.PercentRandom,
		&spec.Delay, &spec.Burst, &spec.Align, &spec.Reply,
	}
	for i, p := range dst {
		*p, _ = strconv.Atoi(parts[i])
	}
	a.rec.AccessSpecs = append(a.rec.AccessSpecs, spec)
}

func (a *assembler) appendResultRow(kind TargetKind, raw string, idx int) error {
	switch kind {
	case TargetProcessor:
		if !a.opts.IncludeProcessors {
			return nil
		}
	case TargetWorker:
		if !a.opts.IncludeWorkers {
			return nil
		}
	}

	row, err := decodeResultRow(strings.Split(raw, ","))
	if err != nil {
		return &CoercionError{
			File:   a.rec.FileName,
			LineNo: idx + 1,
			Line:   raw,
			Cause:  err.(*coercionCause),
		}
	}
	row.SourceFile = a.rec.FileName

	switch kind {
	case TargetAll:
		a.rec.All = append(a.rec.All, *row)
	case TargetManager:
		a.rec.Managers = append(a.rec.Managers, *row)
	case TargetProcessor:
		a.rec.Processors = append(a.rec.Processors, *row)
	case TargetWorker:
		a.rec.Workers = append(a.rec.Workers, *row)
	}
	return nil
}
