package logging

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type account struct {
	ID     string
	Secret string
}

func (a account) LogProjection() interface{} {
	return map[string]interface{}{"id": a.ID}
}

type sourceError struct {
	account account
}

func (e sourceError) Error() string              { return "account locked" }
func (e sourceError) LogProjection() interface{} { return e.account.LogProjection() }

type color int

func (c color) String() string { return fmt.Sprintf("color-%d", int(c)) }

type unmarshalable struct{}

func (unmarshalable) MarshalJSON() ([]byte, error) { return nil, errors.New("no") }
func (unmarshalable) String() string               { return "unmarshalable" }

func TestProject(t *testing.T) {
	assert.Nil(t, Project(nil))
	assert.Equal(t, "s", Project("s"))
	assert.Equal(t, 3, Project(3))
	assert.Equal(t, 1.5, Project(1.5))
	assert.Equal(t, true, Project(true))
	assert.Equal(t, map[string]interface{}{"id": "a1"}, Project(account{ID: "a1", Secret: "x"}))
	assert.Equal(t, "color-2", Project(color(2)))
	assert.Equal(t, []string{"a"}, Project([]string{"a"}))
	assert.Equal(t, map[string]string{"k": "v"}, Project(map[string]string{"k": "v"}))
}

func TestProjectRecursesIntoGenericContainers(t *testing.T) {
	in := map[string]interface{}{
		"account": account{ID: "a1", Secret: "x"},
		"list":    []interface{}{color(1), "plain", account{ID: "a2"}},
	}
	want := map[string]interface{}{
		"account": map[string]interface{}{"id": "a1"},
		"list":    []interface{}{"color-1", "plain", map[string]interface{}{"id": "a2"}},
	}
	assert.Equal(t, want, Project(in))
}

func TestProjectErrors(t *testing.T) {
	assert.Equal(t, map[string]interface{}{"message": "plain"}, Project(errors.New("plain")))

	wrapped := fmt.Errorf("failed: %w", sourceError{account: account{ID: "a1", Secret: "x"}})
	assert.Equal(t, map[string]interface{}{
		"message": "failed: account locked",
		"source":  map[string]interface{}{"id": "a1"},
	}, Project(wrapped))

	// A Loggable error is projected by itself.
	assert.Equal(t, map[string]interface{}{"id": "a1"}, Project(sourceError{account: account{ID: "a1"}}))
}

func TestToJSON(t *testing.T) {
	assert.Equal(t, `"s"`, ToJSON("s"))
	assert.Equal(t, `null`, ToJSON(nil))
	assert.Equal(t, `{"id":"a1"}`, ToJSON(account{ID: "a1", Secret: "hidden"}))
	assert.Equal(t, `{"a":1,"b":[true,"x"]}`, ToJSON(map[string]interface{}{"b": []interface{}{true, "x"}, "a": 1}))
}

func TestToJSONFallsBackToDefaultFormatting(t *testing.T) {
	assert.Equal(t, `"unmarshalable"`, ToJSON(unmarshalable{}))
	assert.Equal(t, `"map[k:unmarshalable]"`, ToJSON(map[string]unmarshalable{"k": {}}))
}
