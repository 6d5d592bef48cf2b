package lantern

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedactFilter(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		want string
	}{
		{"single", "the password is hunter2", "the ****** is hunter2"},
		{"repeated", "password password", "****** ******"},
		{"absent", "nothing secret here", "nothing secret here"},
		{"empty", "", ""},
	}
	f := RedactFilter("password", DefaultMask)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Record{Message: tt.msg}
			assert.True(t, f(r))
			assert.Equal(t, tt.want, r.Message)
		})
	}
}

func TestRedactFilterDefaultMask(t *testing.T) {
	f := RedactFilter("token", "")
	r := &Record{Message: "token=abc"}
	f(r)
	assert.Equal(t, "******=abc", r.Message)
}

func TestContextFilter(t *testing.T) {
	f := ContextFilter(Attr{Key: "user_id", Value: "12345"}, Attr{Key: "session", Value: 7})
	r := &Record{}
	assert.True(t, f(r))

	v, ok := r.Attr("user_id")
	assert.True(t, ok)
	assert.Equal(t, "12345", v)

	v, ok = r.Attr("session")
	assert.True(t, ok)
	assert.Equal(t, 7, v)
}

func TestLevelFilter(t *testing.T) {
	f := LevelFilter(WarningLevel)
	assert.False(t, f(&Record{Level: InfoLevel}))
	assert.True(t, f(&Record{Level: WarningLevel}))
	assert.True(t, f(&Record{Level: CriticalLevel}))
}
