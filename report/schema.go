package report

import (
	"strconv"
)

// ColumnType selects the coercion applied to one result-table column.
type ColumnType int

const (
	ColString ColumnType = iota
	ColNullableInt32
	ColInt32
	ColInt64
	ColFloat64
)

// Column is one entry of the result-table schema.
type Column struct {
	Name string
	Type ColumnType
}

// Columns is the single ordered schema shared by the ALL, MANAGER,
// PROCESSOR and WORKER tables. Index = position in the comma-split
// line. Only the three leading count columns are nullable; every
// later numeric column must decode or the row fails.
var Columns = []Column{
	{"Target Type", ColString},
	{"Target Name", ColString},
	{"Access Specification Name", ColString},
	{"# Managers", ColNullableInt32},
	{"# Workers", ColNullableInt32},
	{"# Disks", ColNullableInt32},
	{"IOps", ColFloat64},
	{"Read IOps", ColFloat64},
	{"Write IOps", ColFloat64},
	{"MBps", ColFloat64},
	{"Read MBps", ColFloat64},
	{"Write MBps", ColFloat64},
	{"Transactions per Second", ColFloat64},
	{"Connections per Second", ColFloat64},
	{"Average Response Time", ColFloat64},
	{"Average Read Response Time", ColFloat64},
	{"Average Write Response Time", ColFloat64},
	{"Average Transaction Time", ColFloat64},
	{"Average Connection Time", ColFloat64},
	{"Maximum Response Time", ColFloat64},
	{"Maximum Read Response Time", ColFloat64},
	{"Maximum Write Response Time", ColFloat64},
	{"Maximum Transaction Time", ColFloat64},
	{"Maximum Connection Time", ColFloat64},
	{"Errors", ColInt32},
	{"Read Errors", ColInt32},
	{"Write Errors", ColInt32},
	{"Bytes Read", ColInt64},
	{"Bytes Written", ColInt64},
	{"Read I/Os", ColInt64},
	{"Write I/Os", ColInt64},
	{"Connections", ColInt64},
	{"Transactions per Connection", ColFloat64},
	{"Total Raw Response Time", ColInt64},
	{"Total Raw Read Response Time", ColInt64},
	{"Total Raw Write Response Time", ColInt64},
	{"Total Raw Transaction Time", ColInt64},
	{"Total Raw Connection Time", ColInt64},
	{"Maximum Raw Response Time", ColInt64},
	{"Maximum Raw Read Response Time", ColInt64},
	{"Maximum Raw Write Response Time", ColInt64},
	{"Maximum Raw Transaction Time", ColInt64},
	{"Maximum Raw Connection Time", ColInt64},
	{"Total Raw Run Time", ColInt64},
	{"Starting Sector", ColInt64},
	{"Maximum Size", ColInt64},
	{"Queue Depth", ColInt32},
	{"% CPU Utilization", ColFloat64},
	{"% User Time", ColFloat64},
	{"% Privileged Time", ColFloat64},
	{"% DPC Time", ColFloat64},
	{"% Interrupt Time", ColFloat64},
	{"Processor Speed", ColInt64},
	{"Interrupts per Second", ColFloat64},
	{"CPU Effectiveness", ColFloat64},
	{"Packets/Second", ColFloat64},
	{"Packet Errors", ColInt32},
	{"Segments Retransmitted/Second", ColFloat64},
	{"0 to 50 uS", ColInt32},
	{"50 to 100 uS", ColInt32},
	{"100 to 200 uS", ColInt32},
	{"200 to 500 uS", ColInt32},
	{"0.5 to 1 mS", ColInt32},
	{"1 to 2 mS", ColInt32},
	{"2 to 5 mS", ColInt32},
	{"5 to 10 mS", ColInt32},
	{"10 to 15 mS", ColInt32},
	{"15 to 20 mS", ColInt32},
	{"20 to 30 mS", ColInt32},
	{"30 to 50 mS", ColInt32},
	{"50 to 100 mS", ColInt32},
	{"100 to 200 mS", ColInt32},
	{"200 to 500 mS", ColInt32},
	{"0.5 to 1 S", ColInt32},
	{"1 to 2 S", ColInt32},
	{"2 to 4.7 S", ColInt32},
	{"4.7 to 5 S", ColInt32},
	{"5 to 10 S", ColInt32},
	{"10 or more S", ColInt32},
}

// rowDecoder coerces positional string fields per Columns, remembering
// the first failure. All accessors keep returning zero values after a
// failure so the caller can assign unconditionally and check once.
type rowDecoder struct {
	fields []string
	errIdx int
	errVal string
	failed bool
}

func newRowDecoder(fields []string) *rowDecoder {
	return &rowDecoder{fields: fields}
}

func (d *rowDecoder) fail(i int, v string) {
	if !d.failed {
		d.failed = true
		d.errIdx = i
		d.errVal = v
	}
}

func (d *rowDecoder) str(i int) string {
	return d.fields[i]
}

func (d *rowDecoder) nullInt32(i int) *int32 {
	v := d.fields[i]
	if v == "" {
		return nil
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		d.fail(i, v)
		return nil
	}
	n32 := int32(n)
	return &n32
}

func (d *rowDecoder) int32(i int) int32 {
	v := d.fields[i]
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		d.fail(i, v)
		return 0
	}
	return int32(n)
}

func (d *rowDecoder) int64(i int) int64 {
	v := d.fields[i]
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		d.fail(i, v)
		return 0
	}
	return n
}

func (d *rowDecoder) float64(i int) float64 {
	v := d.fields[i]
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		d.fail(i, v)
		return 0
	}
	return f
}

// decodeResultRow maps the comma-split fields of one matched result
// line onto a ResultRow. The assignment order below is the schema
// order; Columns supplies the column name when a coercion fails.
func decodeResultRow(fields []string) (*ResultRow, error) {
	if len(fields) < len(Columns) {
		return nil, &coercionCause{
			Column: Columns[len(fields)].Name,
			Index:  len(fields),
			Reason: "missing column",
		}
	}

	d := newRowDecoder(fields)
	row := &ResultRow{
		TargetType:     d.str(0),
		TargetName:     d.str(1),
		AccessSpecName: d.str(2),

		Managers: d.nullInt32(3),
		Workers:  d.nullInt32(4),
		Disks:    d.nullInt32(5),

		IOps:                  d.float64(6),
		ReadIOps:              d.float64(7),
		WriteIOps:             d.float64(8),
		MBps:                  d.float64(9),
		ReadMBps:              d.float64(10),
		WriteMBps:             d.float64(11),
		TransactionsPerSecond: d.float64(12),
		ConnectionsPerSecond:  d.float64(13),

		AvgResponseTime:      d.float64(14),
		AvgReadResponseTime:  d.float64(15),
		AvgWriteResponseTime: d.float64(16),
		AvgTransactionTime:   d.float64(17),
		AvgConnectionTime:    d.float64(18),
		MaxResponseTime:      d.float64(19),
		MaxReadResponseTime:  d.float64(20),
		MaxWriteResponseTime: d.float64(21),
		MaxTransactionTime:   d.float64(22),
		MaxConnectionTime:    d.float64(23),

		Errors:      d.int32(24),
		ReadErrors:  d.int32(25),
		WriteErrors: d.int32(26),

		BytesRead:                 d.int64(27),
		BytesWritten:              d.int64(28),
		ReadIOs:                   d.int64(29),
		WriteIOs:                  d.int64(30),
		Connections:               d.int64(31),
		TransactionsPerConnection: d.float64(32),

		TotalRawResponseTime:      d.int64(33),
		TotalRawReadResponseTime:  d.int64(34),
		TotalRawWriteResponseTime: d.int64(35),
		TotalRawTransactionTime:   d.int64(36),
		TotalRawConnectionTime:    d.int64(37),
		MaxRawResponseTime:        d.int64(38),
		MaxRawReadResponseTime:    d.int64(39),
		MaxRawWriteResponseTime:   d.int64(40),
		MaxRawTransactionTime:     d.int64(41),
		MaxRawConnectionTime:      d.int64(42),
		TotalRawRunTime:           d.int64(43),

		StartingSector: d.int64(44),
		MaximumSize:    d.int64(45),
		QueueDepth:     d.int32(46),

		CPUUtilization:      d.float64(47),
		UserTime:            d.float64(48),
		PrivilegedTime:      d.float64(49),
		DPCTime:             d.float64(50),
		InterruptTime:       d.float64(51),
		ProcessorSpeed:      d.int64(52),
		InterruptsPerSecond: d.float64(53),
		CPUEffectiveness:    d.float64(54),

		PacketsPerSecond:               d.float64(55),
		PacketErrors:                   d.int32(56),
		SegmentsRetransmittedPerSecond: d.float64(57),

		Lat0To50us:    d.int32(58),
		Lat50To100us:  d.int32(59),
		Lat100To200us: d.int32(60),
		Lat200To500us: d.int32(61),
		Lat500usTo1ms: d.int32(62),
		Lat1To2ms:     d.int32(63),
		Lat2To5ms:     d.int32(64),
		Lat5To10ms:    d.int32(65),
		Lat10To15ms:   d.int32(66),
		Lat15To20ms:   d.int32(67),
		Lat20To30ms:   d.int32(68),
		Lat30To50ms:   d.int32(69),
		Lat50To100ms:  d.int32(70),
		Lat100To200ms: d.int32(71),
		Lat200To500ms: d.int32(72),
		Lat500msTo1s:  d.int32(73),
		Lat1To2s:      d.int32(74),
		Lat2To4700ms:  d.int32(75),
		Lat4700msTo5s: d.int32(76),
		Lat5To10s:     d.int32(77),
		Lat10sOrMore:  d.int32(78),
	}

	if d.failed {
		return nil, &coercionCause{
			Column: Columns[d.errIdx].Name,
			Index:  d.errIdx,
			Value:  d.errVal,
			Reason: "not numeric",
		}
	}
	return row, nil
}
