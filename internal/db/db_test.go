package db

import (
	"testing"
)

func TestOpenMemory(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	defer d.Close()

	for _, table := range []string{"chat_sessions", "chat_messages"} {
		var count int
		if err := d.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count); err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}

func TestMigrateIdempotent(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	defer d.Close()

	if err := d.migrate(); err != nil {
		t.Fatalf("second migrate() error: %v", err)
	}
}

func TestSenderConstraint(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	defer d.Close()

	if _, err := d.Exec(`INSERT INTO chat_sessions (id) VALUES ('s1')`); err != nil {
		t.Fatalf("insert session: %v", err)
	}
	_, err = d.Exec(`INSERT INTO chat_messages (id, session_id, sender, content) VALUES ('m1', 's1', 'robot', 'hi')`)
	if err == nil {
		t.Fatal("expected CHECK constraint failure for unknown sender")
	}
}

func TestForeignKeys(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	defer d.Close()

	_, err = d.Exec(`INSERT INTO chat_messages (id, session_id, sender, content) VALUES ('m1', 'missing', 'user', 'hi')`)
	if err == nil {
		t.Fatal("expected foreign key failure for unknown session")
	}
}
