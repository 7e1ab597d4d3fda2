package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resultLine builds a decodable result row. The first six columns are
// taken as given; every later column gets a value matching its type.
func resultLine(kind, mgr, wrk, dsk string) string {
	fields := make([]string, len(Columns))
	fields[0] = kind
	fields[1] = kind + "-0"
	fields[2] = "4K random read"
	fields[3], fields[4], fields[5] = mgr, wrk, dsk
	for i := 6; i < len(Columns); i++ {
		if Columns[i].Type == ColFloat64 {
			fields[i] = "1.5"
		} else {
			fields[i] = "7"
		}
	}
	return strings.Join(fields, ",")
}

func TestSchemaShape(t *testing.T) {
	assert.Len(t, Columns, 79)

	// The leading fixed columns the whole format hangs on.
	assert.Equal(t, Column{"Target Type", ColString}, Columns[0])
	assert.Equal(t, Column{"Access Specification Name", ColString}, Columns[2])
	assert.Equal(t, Column{"# Managers", ColNullableInt32}, Columns[3])
	assert.Equal(t, Column{"# Disks", ColNullableInt32}, Columns[5])
	assert.Equal(t, Column{"IOps", ColFloat64}, Columns[6])
	assert.Equal(t, Column{"10 or more S", ColInt32}, Columns[78])

	for i, c := range Columns[3:6] {
		assert.Equal(t, ColNullableInt32, c.Type, "column %d", i+3)
	}
	for i, c := range Columns[6:] {
		assert.NotEqual(t, ColNullableInt32, c.Type, "column %d must not be nullable", i+6)
	}
}

func TestDecodeResultRow(t *testing.T) {
	fields := strings.Split(resultLine("ALL", "1", "4", "2"), ",")
	fields[6] = "523.45"

	row, err := decodeResultRow(fields)
	require.NoError(t, err)

	assert.Equal(t, "ALL", row.TargetType)
	assert.Equal(t, "ALL-0", row.TargetName)
	assert.Equal(t, "4K random read", row.AccessSpecName)
	require.NotNil(t, row.Managers)
	assert.Equal(t, int32(1), *row.Managers)
	require.NotNil(t, row.Workers)
	assert.Equal(t, int32(4), *row.Workers)
	require.NotNil(t, row.Disks)
	assert.Equal(t, int32(2), *row.Disks)
	assert.Equal(t, 523.45, row.IOps)
	assert.Equal(t, int64(7), row.BytesRead)
	assert.Equal(t, int32(7), row.Errors)
	assert.Equal(t, int32(7), row.Lat10sOrMore)
}

func TestDecodeNullCounts(t *testing.T) {
	fields := strings.Split(resultLine("ALL", "", "", ""), ",")

	row, err := decodeResultRow(fields)
	require.NoError(t, err)

	assert.Nil(t, row.Managers)
	assert.Nil(t, row.Workers)
	assert.Nil(t, row.Disks)
	assert.Equal(t, 1.5, row.IOps)
}

func TestDecodeEmptyNumericColumnFails(t *testing.T) {
	fields := strings.Split(resultLine("ALL", "1", "1", "1"), ",")
	fields[9] = "" // MBps: empty is only allowed for the count columns

	_, err := decodeResultRow(fields)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MBps")
}

func TestDecodeNonNumericColumnFails(t *testing.T) {
	fields := strings.Split(resultLine("WORKER", "1", "1", "1"), ",")
	fields[24] = "oops"

	_, err := decodeResultRow(fields)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Errors")
	assert.Contains(t, err.Error(), "oops")
}

func TestDecodeShortRowFails(t *testing.T) {
	fields := strings.Split(resultLine("ALL", "1", "1", "1"), ",")

	_, err := decodeResultRow(fields[:40])
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing")
	assert.Contains(t, err.Error(), Columns[40].Name)
}

func TestDecodeExtraTrailingColumnsOK(t *testing.T) {
	// IOMeter versions append columns over time; extras are ignored.
	fields := strings.Split(resultLine("ALL", "1", "1", "1")+",999", ",")

	row, err := decodeResultRow(fields)
	require.NoError(t, err)
	assert.Equal(t, "ALL", row.TargetType)
}
