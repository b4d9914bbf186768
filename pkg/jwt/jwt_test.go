package jwt_test

import (
	"testing"
	"time"

	"github.com/convox/events/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJwtToken(t *testing.T) {
	jm := jwt.NewJwtManager("TEST")

	tk, err := jm.Token("alice", []string{"content-creators"}, time.Hour)
	assert.NoError(t, err, "no error")

	c, err := jm.Verify(tk)
	assert.NoError(t, err)
	assert.Equal(t, "alice", c.Identity())
	assert.True(t, c.InGroup("content-creators"))
	assert.False(t, c.InGroup("admins"))
}

func TestJwtTokenExpired(t *testing.T) {
	jm := jwt.NewJwtManager("TEST")

	tk, err := jm.Token("alice", nil, time.Hour*-1)
	assert.NoError(t, err, "no error")

	c, err := jm.Verify(tk)
	assert.Error(t, err)
	assert.Nil(t, c)

	c, err = jwt.Parse(tk)
	assert.Error(t, err)
	assert.Nil(t, c)
}

func TestJwtTokenInvalid(t *testing.T) {
	jm := jwt.NewJwtManager("TEST")

	tk, err := jm.Token("alice", nil, time.Hour)
	assert.NoError(t, err, "no error")

	c, err := jm.Verify(tk[:len(tk)-1])
	assert.Error(t, err)
	assert.Nil(t, c)

	c, err = jwt.NewJwtManager("OTHER").Verify(tk)
	assert.Error(t, err)
	assert.Nil(t, c)
}

func TestParseUnverified(t *testing.T) {
	tk, err := jwt.NewJwtManager("ANY").Token("bob", []string{"content-creators", "staff"}, time.Hour)
	require.NoError(t, err)

	c, err := jwt.Parse(tk)
	require.NoError(t, err)
	require.Equal(t, "bob", c.Identity())
	require.True(t, c.InGroup("staff"))

	_, err = jwt.Parse("not.a.token")
	require.Error(t, err)
}

func TestBearerToken(t *testing.T) {
	tk, err := jwt.BearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	require.Equal(t, "abc.def.ghi", tk)

	tk, err = jwt.BearerToken("bearer   xyz")
	require.NoError(t, err)
	require.Equal(t, "xyz", tk)

	for _, h := range []string{"", "Bearer", "Bearer ", "Basic abc", "abc"} {
		_, err := jwt.BearerToken(h)
		require.EqualError(t, err, "missing bearer token", h)
	}
}
