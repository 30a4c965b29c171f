package actionlog

import (
	"time"

	"github.com/trenirovka/rosterbot/internal/models"
)

// record is the persisted wire form of one action log entry. The field
// names and the timestamp layout are a compatibility contract with
// existing log files.
type record struct {
	Timestamp string `json:"timestamp"`
	UserID    int64  `json:"user_id"`
	UserName  string `json:"user_name"`
	Action    string `json:"action"`
}

func toRecord(entry models.ActionEntry) record {
	return record{
		Timestamp: entry.Timestamp.Format(models.ActionTimeLayout),
		UserID:    entry.ActorID,
		UserName:  entry.ActorName,
		Action:    entry.Action,
	}
}

func (r record) toEntry() models.ActionEntry {
	// Timestamps written by other tooling may not parse; a zero time is
	// better than dropping the entry.
	ts, _ := time.Parse(models.ActionTimeLayout, r.Timestamp)
	return models.ActionEntry{
		Timestamp: ts,
		ActorID:   r.UserID,
		ActorName: r.UserName,
		Action:    r.Action,
	}
}
