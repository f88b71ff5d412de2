package audit

import (
	"fmt"
	"strconv"
)

// PurgeEvent marks a bulk delete of stale rows.
type PurgeEvent struct {
	Table string
	Count int64
}

func (e PurgeEvent) MessageID() string {
	return "purge"
}

func (e PurgeEvent) Message() string {
	return fmt.Sprintf("purged %d stale rows from %s", e.Count, e.Table)
}

func (e PurgeEvent) Severity() Severity {
	return SeverityInfo
}

func (e PurgeEvent) Facility() int {
	return FacilityAudit
}

func (e PurgeEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDSubject: {
			"table": e.Table,
			"count": strconv.FormatInt(e.Count, 10),
		},
		SDIDAction: {
			"operation": "purge",
		},
	}
}
