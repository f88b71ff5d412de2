package audit

import (
	"bytes"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedLogger() (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := NewLogger()
	logger.SetWriter(&buf)
	return logger, &buf
}

var syslogLineRegex = regexp.MustCompile(`^<(\d+)>1 \d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{3}Z \S+ modelbase \d+ (\S+) (.+)\n$`)

func TestLogFormat(t *testing.T) {
	logger, buf := newBufferedLogger()

	logger.Log(RecordCreatedEvent{Table: "users", RecordID: "abc-123"})

	line := buf.String()
	m := syslogLineRegex.FindStringSubmatch(line)
	require.NotNil(t, m, "line %q does not match RFC5424 shape", line)

	// PRI = facility*8 + severity
	assert.Equal(t, "110", m[1])
	assert.Equal(t, "create", m[2])
	assert.Contains(t, line, `[subject@32473`)
	assert.Contains(t, line, `table="users"`)
	assert.Contains(t, line, `id="abc-123"`)
	assert.Contains(t, line, "created users record abc-123")
}

func TestEventMessages(t *testing.T) {
	tests := []struct {
		name     string
		event    Event
		msgID    string
		message  string
		severity Severity
	}{
		{
			name:     "record created",
			event:    RecordCreatedEvent{Table: "users", RecordID: "u1"},
			msgID:    "create",
			message:  "created users record u1",
			severity: SeverityInfo,
		},
		{
			name:     "record deleted",
			event:    RecordDeletedEvent{Table: "users", RecordID: "u1"},
			msgID:    "delete",
			message:  "deleted users record u1",
			severity: SeverityNotice,
		},
		{
			name:     "record updated",
			event:    RecordUpdatedEvent{Table: "users", RecordID: "u1", Field: "balance"},
			msgID:    "update",
			message:  "updated balance of users record u1",
			severity: SeverityInfo,
		},
		{
			name:     "purge",
			event:    PurgeEvent{Table: "sessions", Count: 3},
			msgID:    "purge",
			message:  "purged 3 stale rows from sessions",
			severity: SeverityInfo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.msgID, tt.event.MessageID())
			assert.Equal(t, tt.message, tt.event.Message())
			assert.Equal(t, tt.severity, tt.event.Severity())
			assert.Equal(t, FacilityAudit, tt.event.Facility())
		})
	}
}

func TestStructuredDataEscaping(t *testing.T) {
	escaped := escapeSDValue(`quo"te back\slash brack]et`)
	assert.Equal(t, `"quo\"te back\\slash brack\]et"`, escaped)
}

func TestSetEnabled(t *testing.T) {
	logger, buf := newBufferedLogger()
	prev := DefaultLogger
	DefaultLogger = logger
	defer func() { DefaultLogger = prev }()

	SetEnabled(false)
	Log(PurgeEvent{Table: "sessions", Count: 1})
	assert.Empty(t, buf.String())

	SetEnabled(true)
	Log(PurgeEvent{Table: "sessions", Count: 1})
	assert.NotEmpty(t, buf.String())
}
