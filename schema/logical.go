package schema

// LogicalType is an overlay annotation on a primitive or fixed node that
// gives it a higher-level interpretation without changing its wire bytes.
type LogicalType int

const (
	LogicalNone LogicalType = iota
	LogicalDecimal
	LogicalDate
	LogicalTimeMillis
	LogicalTimeMicros
	LogicalTimestampMillis
	LogicalTimestampMicros
	LogicalDuration
	LogicalUUID
)

func (l LogicalType) String() string {
	switch l {
	case LogicalDecimal:
		return "decimal"
	case LogicalDate:
		return "date"
	case LogicalTimeMillis:
		return "time-millis"
	case LogicalTimeMicros:
		return "time-micros"
	case LogicalTimestampMillis:
		return "timestamp-millis"
	case LogicalTimestampMicros:
		return "timestamp-micros"
	case LogicalDuration:
		return "duration"
	case LogicalUUID:
		return "uuid"
	default:
		return "none"
	}
}

// logicalKindByName are the logical type tags that take no parameters.
var logicalKindByName = map[string]LogicalType{
	"date":              LogicalDate,
	"time-millis":       LogicalTimeMillis,
	"time-micros":       LogicalTimeMicros,
	"timestamp-millis":  LogicalTimestampMillis,
	"timestamp-micros":  LogicalTimestampMicros,
	"duration":          LogicalDuration,
	"uuid":              LogicalUUID,
}

// LogicalByName looks up a non-decimal logical type tag by its JSON name.
func LogicalByName(name string) (LogicalType, bool) {
	l, ok := logicalKindByName[name]
	return l, ok
}

// Logical carries a LogicalType plus the optional decimal parameters.
type Logical struct {
	Type      LogicalType
	Precision int
	Scale     int
}
