package envelope

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestDecodeList(t *testing.T) {
	t.Run("bare array", func(t *testing.T) {
		raw := []byte(`[{"id":"1","name":"a"},{"id":"2","name":"b"}]`)
		got := DecodeList[record](raw, Path("data"), Path())
		assert.Len(t, got, 2)
		assert.Equal(t, "1", got[0].ID)
	})

	t.Run("nested under data", func(t *testing.T) {
		raw := []byte(`{"success":true,"data":[{"id":"1","name":"a"}]}`)
		got := DecodeList[record](raw, Path("data"), Path())
		assert.Len(t, got, 1)
	})

	t.Run("double nested wins over miss", func(t *testing.T) {
		raw := []byte(`{"data":{"users":[{"id":"9","name":"z"}]}}`)
		got := DecodeList[record](raw, Path("data"), Path("data", "users"))
		assert.Len(t, got, 1)
		assert.Equal(t, "9", got[0].ID)
	})

	t.Run("first matching shape takes priority", func(t *testing.T) {
		raw := []byte(`{"data":[{"id":"1","name":"a"}],"items":[{"id":"2","name":"b"}]}`)
		got := DecodeList[record](raw, Path("data"), Path("items"))
		assert.Equal(t, "1", got[0].ID)
	})

	t.Run("no shape matches", func(t *testing.T) {
		raw := []byte(`{"data":{"count":3}}`)
		got := DecodeList[record](raw, Path("data"), Path())
		assert.Nil(t, got)
	})

	t.Run("matching shape with empty array is not nil", func(t *testing.T) {
		raw := []byte(`{"data":[]}`)
		got := DecodeList[record](raw, Path("data"), Path())
		assert.NotNil(t, got)
		assert.Len(t, got, 0)
	})

	t.Run("undecodable element is skipped", func(t *testing.T) {
		raw := []byte(`{"data":[{"id":"1","name":"a"},"oops",{"id":"2","name":"b"}]}`)
		got := DecodeList[record](raw, Path("data"))
		assert.Len(t, got, 2)
	})
}

func TestStringAt(t *testing.T) {
	raw := []byte(`{"data":{"token":"abc","user":{"role":"ADMIN"}}}`)

	assert.Equal(t, "abc", StringAt(raw, "data", "token"))
	assert.Equal(t, "ADMIN", StringAt(raw, "data", "user", "role"))
	assert.Equal(t, "", StringAt(raw, "data", "missing"))
	assert.Equal(t, "", StringAt(raw, "data", "user"))
}

func TestObjectAt(t *testing.T) {
	raw := []byte(`{"data":{"user":{"role":"ADMIN"}}}`)

	assert.NotNil(t, ObjectAt(raw, "data", "user"))
	assert.Nil(t, ObjectAt(raw, "data", "account"))
}

func TestDecodeObject(t *testing.T) {
	keep := func(r *record) bool { return r.ID != "" }

	t.Run("first matching candidate wins", func(t *testing.T) {
		raw := []byte(`{"data":{"user":{"id":"1","name":"a"}}}`)
		got := DecodeObject[record](raw, keep,
			[]string{"data", "user"},
			[]string{"data"},
		)
		assert.NotNil(t, got)
		assert.Equal(t, "1", got.ID)
	})

	t.Run("empty decode falls through to the next candidate", func(t *testing.T) {
		raw := []byte(`{"data":{"id":"2","name":"b"}}`)
		got := DecodeObject[record](raw, keep,
			[]string{"data", "user"},
			[]string{"data"},
		)
		assert.NotNil(t, got)
		assert.Equal(t, "2", got.ID)
	})

	t.Run("nil candidate matches the bare payload", func(t *testing.T) {
		raw := []byte(`{"id":"3","name":"c"}`)
		got := DecodeObject[record](raw, keep, []string{"data"}, nil)
		assert.NotNil(t, got)
		assert.Equal(t, "3", got.ID)
	})

	t.Run("no acceptable candidate is nil", func(t *testing.T) {
		raw := []byte(`{"data":{"name":"anonymous"}}`)
		got := DecodeObject[record](raw, keep, []string{"data"}, nil)
		assert.Nil(t, got)
	})
}
