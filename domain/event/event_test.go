package event

import (
	"encoding/json"
	"testing"

	"notification-hub/errors"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	req := require.New(t)

	frame, err := Encode(Joined, JoinedPayload{Message: "ok", UserID: "alice", Joined: true})
	req.NoError(err)
	req.JSONEq(`{"event":"joined","data":{"message":"ok","userId":"alice","joined":true}}`, string(frame))

	env, err := Decode(frame)
	req.NoError(err)
	req.Equal(Joined, env.Event)

	var payload JoinedPayload
	req.NoError(json.Unmarshal(env.Data, &payload))
	req.Equal("alice", payload.UserID)
}

func TestEncode_WithoutData(t *testing.T) {
	req := require.New(t)
	frame, err := Encode(Pong, nil)
	req.NoError(err)
	req.JSONEq(`{"event":"pong"}`, string(frame))
}

func TestDecode_Malformed(t *testing.T) {
	req := require.New(t)

	_, err := Decode([]byte("not json"))
	req.ErrorIs(err, errors.ErrMalformedEvent)

	_, err = Decode([]byte(`{"data":{}}`))
	req.ErrorIs(err, errors.ErrMalformedEvent)
}

func TestDecodePayload(t *testing.T) {
	t.Run("valid join", func(t *testing.T) {
		req := require.New(t)
		env, err := Decode([]byte(`{"event":"join","data":{"userId":"alice"}}`))
		req.NoError(err)
		var p JoinPayload
		req.NoError(DecodePayload(env, &p))
		req.Equal("alice", p.UserID)
	})

	cases := map[string]string{
		"missing data":    `{"event":"join"}`,
		"missing user id": `{"event":"join","data":{}}`,
		"wrong type":      `{"event":"join","data":{"userId":42}}`,
		"not an object":   `{"event":"join","data":"alice"}`,
	}
	for name, frame := range cases {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)
			env, err := Decode([]byte(frame))
			req.NoError(err)
			var p JoinPayload
			req.ErrorIs(DecodePayload(env, &p), errors.ErrMalformedEvent)
		})
	}

	t.Run("mark read needs a uuid", func(t *testing.T) {
		req := require.New(t)
		env, err := Decode([]byte(`{"event":"mark_read","data":{"notificationId":"abc"}}`))
		req.NoError(err)
		var p MarkReadPayload
		req.ErrorIs(DecodePayload(env, &p), errors.ErrMalformedEvent)
	})
}
