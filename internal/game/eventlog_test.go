package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventLogKeepsNewest(t *testing.T) {
	l := NewEventLog(3)
	for i := range 5 {
		l.Addf("entry %d", i)
	}
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, []string{"entry 2", "entry 3", "entry 4"}, l.Entries())
}

func TestEventLogDefaultCapacity(t *testing.T) {
	l := NewEventLog(0)
	for i := range DefaultLogCapacity + 10 {
		l.Addf("%d", i)
	}
	entries := l.Entries()
	assert.Len(t, entries, DefaultLogCapacity)
	assert.Equal(t, "10", entries[0])
	assert.Equal(t, fmt.Sprint(DefaultLogCapacity+9), entries[len(entries)-1])
}

func TestEventLogEntriesIsCopy(t *testing.T) {
	l := NewEventLog(2)
	l.Addf("a")
	e := l.Entries()
	e[0] = "b"
	assert.Equal(t, []string{"a"}, l.Entries())
}
