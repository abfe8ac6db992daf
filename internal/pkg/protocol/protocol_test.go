package protocol

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateCoordinate(t *testing.T) {
	for col := byte('A'); col <= 'I'; col++ {
		for row := byte('1'); row <= '9'; row++ {
			coord := string([]byte{col, row})
			require.True(t, ValidateCoordinate(coord), coord)
		}
	}
	for _, coord := range []string{
		"J1", "A0", "A10", "", "A", "a1", "1A", "11", "AA", "I0", " A1", "A1 ",
	} {
		require.False(t, ValidateCoordinate(coord), "%q", coord)
	}
}

func TestJSONCodecEncode(t *testing.T) {
	codec := JSONCodec{}

	frame, err := codec.Encode(NewMessage(TypeStartGame, nil))
	require.NoError(t, err)
	require.Equal(t, `{"type":"START_GAME","data":{}}`+"\n", string(frame))

	frame, err = codec.Encode(NewMessage(TypeShot, Payload{"coordinate": "E5"}))
	require.NoError(t, err)
	require.Equal(t, `{"type":"SHOT","data":{"coordinate":"E5"}}`+"\n", string(frame))

	_, err = codec.Encode(Message{Type: "BOGUS"})
	require.ErrorIs(t, err, ErrMalformedMessage)
}

func TestJSONCodecDecode(t *testing.T) {
	codec := JSONCodec{}

	msg, err := codec.Decode([]byte(`{"type":"SHOT","data":{"coordinate":"B7"}}` + "\n"))
	require.NoError(t, err)
	require.Equal(t, TypeShot, msg.Type)
	coord, ok := msg.Data.Coordinate()
	require.True(t, ok)
	require.Equal(t, "B7", coord)

	msg, err = codec.Decode([]byte(`{"type":"GAME_OVER","data":{"score":42}}` + "\n"))
	require.NoError(t, err)
	score, ok := msg.Data.Score()
	require.True(t, ok)
	require.Equal(t, 42, score)

	// Well-formed but semantically wrong payloads still decode; validation
	// belongs to the state machines.
	msg, err = codec.Decode([]byte(`{"type":"SHOT"}` + "\n"))
	require.NoError(t, err)
	_, ok = msg.Data.Coordinate()
	require.False(t, ok)

	for _, frame := range []string{
		"not json\n",
		`{"type":"BOGUS","data":{}}` + "\n",
		`{"data":{}}` + "\n",
		"\n",
	} {
		_, err := codec.Decode([]byte(frame))
		require.ErrorIs(t, err, ErrMalformedMessage, "%q", frame)
	}
}

func TestLegacyCodecEncode(t *testing.T) {
	codec := LegacyCodec{}

	for _, tc := range []struct {
		msg  Message
		want string
	}{
		{NewMessage(TypeStartGame, nil), "START GAME\n"},
		{NewMessage(TypePositioningShips, nil), "POSITIONING SHIPS\n"},
		{NewMessage(TypeShipsInPosition, nil), "SHIPS IN POSITION\n"},
		{NewMessage(TypeHit, nil), "HIT\n"},
		{NewMessage(TypeMiss, nil), "MISS\n"},
		{NewMessage(TypeShot, Payload{"coordinate": "E5"}), "E5\n"},
		{NewMessage(TypeGameOver, Payload{"score": 37}), "37\n"},
	} {
		frame, err := codec.Encode(tc.msg)
		require.NoError(t, err)
		require.Equal(t, tc.want, string(frame))
	}

	_, err := codec.Encode(NewMessage(TypeError, Payload{"message": "boom"}))
	require.ErrorIs(t, err, ErrNoLegacyEncoding)

	_, err = codec.Encode(NewMessage(TypeShot, nil))
	require.ErrorIs(t, err, ErrMalformedMessage)
}

func TestLegacyCodecDecode(t *testing.T) {
	codec := LegacyCodec{}

	msg, err := codec.Decode([]byte("START GAME\n"))
	require.NoError(t, err)
	require.Equal(t, TypeStartGame, msg.Type)

	msg, err = codec.Decode([]byte("e5\n"))
	require.NoError(t, err)
	require.Equal(t, TypeShot, msg.Type)
	coord, ok := msg.Data.Coordinate()
	require.True(t, ok)
	require.Equal(t, "E5", coord)

	msg, err = codec.Decode([]byte("37\n"))
	require.NoError(t, err)
	require.Equal(t, TypeGameOver, msg.Type)
	score, ok := msg.Data.Score()
	require.True(t, ok)
	require.Equal(t, 37, score)

	for _, frame := range []string{"GARBAGE\n", "Z9\n", "A10\n", "\n"} {
		_, err := codec.Decode([]byte(frame))
		require.ErrorIs(t, err, ErrMalformedMessage, fmt.Sprintf("%q", frame))
	}
}
