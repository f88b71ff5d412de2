package audit

import "fmt"

// RecordCreatedEvent marks a row insert.
type RecordCreatedEvent struct {
	Table    string
	RecordID string
}

func (e RecordCreatedEvent) MessageID() string {
	return "create"
}

func (e RecordCreatedEvent) Message() string {
	return fmt.Sprintf("created %s record %s", e.Table, e.RecordID)
}

func (e RecordCreatedEvent) Severity() Severity {
	return SeverityInfo
}

func (e RecordCreatedEvent) Facility() int {
	return FacilityAudit
}

func (e RecordCreatedEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDSubject: {
			"table": e.Table,
			"id":    e.RecordID,
		},
		SDIDAction: {
			"operation": "create",
		},
	}
}

// RecordDeletedEvent marks a row delete.
type RecordDeletedEvent struct {
	Table    string
	RecordID string
}

func (e RecordDeletedEvent) MessageID() string {
	return "delete"
}

func (e RecordDeletedEvent) Message() string {
	return fmt.Sprintf("deleted %s record %s", e.Table, e.RecordID)
}

func (e RecordDeletedEvent) Severity() Severity {
	return SeverityNotice
}

func (e RecordDeletedEvent) Facility() int {
	return FacilityAudit
}

func (e RecordDeletedEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDSubject: {
			"table": e.Table,
			"id":    e.RecordID,
		},
		SDIDAction: {
			"operation": "delete",
		},
	}
}

// RecordUpdatedEvent marks a targeted field update on a row.
type RecordUpdatedEvent struct {
	Table    string
	RecordID string
	Field    string
}

func (e RecordUpdatedEvent) MessageID() string {
	return "update"
}

func (e RecordUpdatedEvent) Message() string {
	return fmt.Sprintf("updated %s of %s record %s", e.Field, e.Table, e.RecordID)
}

func (e RecordUpdatedEvent) Severity() Severity {
	return SeverityInfo
}

func (e RecordUpdatedEvent) Facility() int {
	return FacilityAudit
}

func (e RecordUpdatedEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDSubject: {
			"table": e.Table,
			"id":    e.RecordID,
			"field": e.Field,
		},
		SDIDAction: {
			"operation": "update",
		},
	}
}
