package report

// TargetKind is the aggregation scope of a result row.
type TargetKind string

const (
	TargetAll       TargetKind = "ALL"
	TargetManager   TargetKind = "MANAGER"
	TargetProcessor TargetKind = "PROCESSOR"
	TargetWorker    TargetKind = "WORKER"
)

// TestRecord holds everything parsed from one IOMeter result export.
// JSON field names match the column headers IOMeter prints, so the
// output document can be joined against the raw exports by name.
type TestRecord struct {
	FileName        string                `json:"File Name"`
	TestType        *int                  `json:"Test Type"`
	TestDescription *string               `json:"Test Description"`
	TimeStamp       *string               `json:"Time Stamp"`
	AccessSpecs     []AccessSpecification `json:"Access Specifications"`
	All             []ResultRow           `json:"Test Results All"`
	Managers        []ResultRow           `json:"Test Results Managers"`
	Processors      []ResultRow           `json:"Test Results Processors"`
	Workers         []ResultRow           `json:"Test Results Workers"`
}

// AccessSpecification is one synthetic workload profile row. Name and
// DefaultAssignment come from the last name/assignment pair seen
// anywhere earlier in the file, which may be a different block than
// the row itself; the format gives no stronger guarantee.
type AccessSpecification struct {
	Name              string `json:"Access Specification Name"`
	DefaultAssignment string `json:"Default Assignment"`
	Size              int    `json:"Size"`
	PercentOfSize     int    `json:"% of Size"`
	PercentReads      int    `json:"% Reads"`
	PercentRandom     int    `json:"% Random"`
	Delay             int    `json:"Delay"`
	Burst             int    `json:"Burst"`
	Align             int    `json:"Align"`
	Reply             int    `json:"Reply"`
}

// ResultRow is one ALL/MANAGER/PROCESSOR/WORKER result table row. The
// same shape serves all four kinds; Columns in schema.go is the single
// source of truth for order and types. The three count fields are
// pointers because IOMeter leaves them empty for the aggregate scope.
// Parquet tags drive the optional flat row export; SourceFile only
// exists there, the JSON document carries the file name on the record.
type ResultRow struct {
	SourceFile string `json:"-" parquet:"name=source_file, type=BYTE_ARRAY, convertedtype=UTF8"`

	TargetType     string `json:"Target Type" parquet:"name=target_type, type=BYTE_ARRAY, convertedtype=UTF8"`
	TargetName     string `json:"Target Name" parquet:"name=target_name, type=BYTE_ARRAY, convertedtype=UTF8"`
	AccessSpecName string `json:"Access Specification Name" parquet:"name=access_spec_name, type=BYTE_ARRAY, convertedtype=UTF8"`

	Managers *int32 `json:"# Managers" parquet:"name=managers, type=INT32, repetitiontype=OPTIONAL"`
	Workers  *int32 `json:"# Workers" parquet:"name=workers, type=INT32, repetitiontype=OPTIONAL"`
	Disks    *int32 `json:"# Disks" parquet:"name=disks, type=INT32, repetitiontype=OPTIONAL"`

	IOps                  float64 `json:"IOps" parquet:"name=iops, type=DOUBLE"`
	ReadIOps              float64 `json:"Read IOps" parquet:"name=read_iops, type=DOUBLE"`
	WriteIOps             float64 `json:"Write IOps" parquet:"name=write_iops, type=DOUBLE"`
	MBps                  float64 `json:"MBps" parquet:"name=mbps, type=DOUBLE"`
	ReadMBps              float64 `json:"Read MBps" parquet:"name=read_mbps, type=DOUBLE"`
	WriteMBps             float64 `json:"Write MBps" parquet:"name=write_mbps, type=DOUBLE"`
	TransactionsPerSecond float64 `json:"Transactions per Second" parquet:"name=transactions_per_second, type=DOUBLE"`
	ConnectionsPerSecond  float64 `json:"Connections per Second" parquet:"name=connections_per_second, type=DOUBLE"`

	AvgResponseTime      float64 `json:"Average Response Time" parquet:"name=avg_response_time, type=DOUBLE"`
	AvgReadResponseTime  float64 `json:"Average Read Response Time" parquet:"name=avg_read_response_time, type=DOUBLE"`
	AvgWriteResponseTime float64 `json:"Average Write Response Time" parquet:"name=avg_write_response_time, type=DOUBLE"`
	AvgTransactionTime   float64 `json:"Average Transaction Time" parquet:"name=avg_transaction_time, type=DOUBLE"`
	AvgConnectionTime    float64 `json:"Average Connection Time" parquet:"name=avg_connection_time, type=DOUBLE"`
	MaxResponseTime      float64 `json:"Maximum Response Time" parquet:"name=max_response_time, type=DOUBLE"`
	MaxReadResponseTime  float64 `json:"Maximum Read Response Time" parquet:"name=max_read_response_time, type=DOUBLE"`
	MaxWriteResponseTime float64 `json:"Maximum Write Response Time" parquet:"name=max_write_response_time, type=DOUBLE"`
	MaxTransactionTime   float64 `json:"Maximum Transaction Time" parquet:"name=max_transaction_time, type=DOUBLE"`
	MaxConnectionTime    float64 `json:"Maximum Connection Time" parquet:"name=max_connection_time, type=DOUBLE"`

	Errors      int32 `json:"Errors" parquet:"name=errors, type=INT32"`
	ReadErrors  int32 `json:"Read Errors" parquet:"name=read_errors, type=INT32"`
	WriteErrors int32 `json:"Write Errors" parquet:"name=write_errors, type=INT32"`

	BytesRead                 int64   `json:"Bytes Read" parquet:"name=bytes_read, type=INT64"`
	BytesWritten              int64   `json:"Bytes Written" parquet:"name=bytes_written, type=INT64"`
	ReadIOs                   int64   `json:"Read I/Os" parquet:"name=read_ios, type=INT64"`
	WriteIOs                  int64   `json:"Write I/Os" parquet:"name=write_ios, type=INT64"`
	Connections               int64   `json:"Connections" parquet:"name=connections, type=INT64"`
	TransactionsPerConnection float64 `json:"Transactions per Connection" parquet:"name=transactions_per_connection, type=DOUBLE"`

	TotalRawResponseTime      int64 `json:"Total Raw Response Time" parquet:"name=total_raw_response_time, type=INT64"`
	TotalRawReadResponseTime  int64 `json:"Total Raw Read Response Time" parquet:"name=total_raw_read_response_time, type=INT64"`
	TotalRawWriteResponseTime int64 `json:"Total Raw Write Response Time" parquet:"name=total_raw_write_response_time, type=INT64"`
	TotalRawTransactionTime   int64 `json:"Total Raw Transaction Time" parquet:"name=total_raw_transaction_time, type=INT64"`
	TotalRawConnectionTime    int64 `json:"Total Raw Connection Time" parquet:"name=total_raw_connection_time, type=INT64"`
	MaxRawResponseTime        int64 `json:"Maximum Raw Response Time" parquet:"name=max_raw_response_time, type=INT64"`
	MaxRawReadResponseTime    int64 `json:"Maximum Raw Read Response Time" parquet:"name=max_raw_read_response_time, type=INT64"`
	MaxRawWriteResponseTime   int64 `json:"Maximum Raw Write Response Time" parquet:"name=max_raw_write_response_time, type=INT64"`
	MaxRawTransactionTime     int64 `json:"Maximum Raw Transaction Time" parquet:"name=max_raw_transaction_time, type=INT64"`
	MaxRawConnectionTime      int64 `json:"Maximum Raw Connection Time" parquet:"name=max_raw_connection_time, type=INT64"`
	TotalRawRunTime           int64 `json:"Total Raw Run Time" parquet:"name=total_raw_run_time, type=INT64"`

	StartingSector int64 `json:"Starting Sector" parquet:"name=starting_sector, type=INT64"`
	MaximumSize    int64 `json:"Maximum Size" parquet:"name=maximum_size, type=INT64"`
	QueueDepth     int32 `json:"Queue Depth" parquet:"name=queue_depth, type=INT32"`

	CPUUtilization      float64 `json:"% CPU Utilization" parquet:"name=cpu_utilization_pct, type=DOUBLE"`
	UserTime            float64 `json:"% User Time" parquet:"name=user_time_pct, type=DOUBLE"`
	PrivilegedTime      float64 `json:"% Privileged Time" parquet:"name=privileged_time_pct, type=DOUBLE"`
	DPCTime             float64 `json:"% DPC Time" parquet:"name=dpc_time_pct, type=DOUBLE"`
	InterruptTime       float64 `json:"% Interrupt Time" parquet:"name=interrupt_time_pct, type=DOUBLE"`
	ProcessorSpeed      int64   `json:"Processor Speed" parquet:"name=processor_speed, type=INT64"`
	InterruptsPerSecond float64 `json:"Interrupts per Second" parquet:"name=interrupts_per_second, type=DOUBLE"`
	CPUEffectiveness    float64 `json:"CPU Effectiveness" parquet:"name=cpu_effectiveness, type=DOUBLE"`

	PacketsPerSecond               float64 `json:"Packets/Second" parquet:"name=packets_per_second, type=DOUBLE"`
	PacketErrors                   int32   `json:"Packet Errors" parquet:"name=packet_errors, type=INT32"`
	SegmentsRetransmittedPerSecond float64 `json:"Segments Retransmitted/Second" parquet:"name=segments_retransmitted_per_second, type=DOUBLE"`

	Lat0To50us    int32 `json:"0 to 50 uS" parquet:"name=lat_0_to_50_us, type=INT32"`
	Lat50To100us  int32 `json:"50 to 100 uS" parquet:"name=lat_50_to_100_us, type=INT32"`
	Lat100To200us int32 `json:"100 to 200 uS" parquet:"name=lat_100_to_200_us, type=INT32"`
	Lat200To500us int32 `json:"200 to 500 uS" parquet:"name=lat_200_to_500_us, type=INT32"`
	Lat500usTo1ms int32 `json:"0.5 to 1 mS" parquet:"name=lat_500_us_to_1_ms, type=INT32"`
	Lat1To2ms     int32 `json:"1 to 2 mS" parquet:"name=lat_1_to_2_ms, type=INT32"`
	Lat2To5ms     int32 `json:"2 to 5 mS" parquet:"name=lat_2_to_5_ms, type=INT32"`
	Lat5To10ms    int32 `json:"5 to 10 mS" parquet:"name=lat_5_to_10_ms, type=INT32"`
	Lat10To15ms   int32 `json:"10 to 15 mS" parquet:"name=lat_10_to_15_ms, type=INT32"`
	Lat15To20ms   int32 `json:"15 to 20 mS" parquet:"name=lat_15_to_20_ms, type=INT32"`
	Lat20To30ms   int32 `json:"20 to 30 mS" parquet:"name=lat_20_to_30_ms, type=INT32"`
	Lat30To50ms   int32 `json:"30 to 50 mS" parquet:"name=lat_30_to_50_ms, type=INT32"`
	Lat50To100ms  int32 `json:"50 to 100 mS" parquet:"name=lat_50_to_100_ms, type=INT32"`
	Lat100To200ms int32 `json:"100 to 200 mS" parquet:"name=lat_100_to_200_ms, type=INT32"`
	Lat200To500ms int32 `json:"200 to 500 mS" parquet:"name=lat_200_to_500_ms, type=INT32"`
	Lat500msTo1s  int32 `json:"0.5 to 1 S" parquet:"name=lat_500_ms_to_1_s, type=INT32"`
	Lat1To2s      int32 `json:"1 to 2 S" parquet:"name=lat_1_to_2_s, type=INT32"`
	Lat2To4700ms  int32 `json:"2 to 4.7 S" parquet:"name=lat_2_to_4700_ms, type=INT32"`
	Lat4700msTo5s int32 `json:"4.7 to 5 S" parquet:"name=lat_4700_ms_to_5_s, type=INT32"`
	Lat5To10s     int32 `json:"5 to 10 S" parquet:"name=lat_5_to_10_s, type=INT32"`
	Lat10sOrMore  int32 `json:"10 or more S" parquet:"name=lat_10_s_or_more, type=INT32"`
}

// newTestRecord returns a record with empty, non-nil row slices so the
// serialized document always carries all four arrays.
func newTestRecord(fileName string) *TestRecord {
	return &TestRecord{
		FileName:    fileName,
		AccessSpecs: []AccessSpecification{},
		All:         []ResultRow{},
		Managers:    []ResultRow{},
		Processors:  []ResultRow{},
		Workers:     []ResultRow{},
	}
}
