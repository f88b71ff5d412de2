// Package audit provides an RFC 5424 audit trail for data-layer
// mutations.
//
// Events cover record creation, deletion, balance-style field updates,
// and bulk purges. Each event is emitted as a single syslog-formatted
// line with structured data describing the subject record:
//
//	audit.Log(audit.RecordCreatedEvent{Table: "users", RecordID: id})
//
// Audit logging is on by default and can be disabled with
// MODELBASE_AUDIT_ENABLED=false.
package audit
