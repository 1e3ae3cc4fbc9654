package network

import (
	"reflect"

	"github.com/invopop/jsonschema"
)

// Schema describes every message of the streaming protocol
// Client messages and server messages are grouped under oneOf alternatives
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		DoNotReference:             true,
	}

	message := func(v any, title string) *jsonschema.Schema {
		s := reflector.ReflectFromType(reflect.TypeOf(v))
		s.Version = ""
		s.Title = title
		return s
	}

	client := &jsonschema.Schema{
		Title:       "Client Message",
		Description: "Sent by a client to steer its session.",
		OneOf: []*jsonschema.Schema{
			message(ClientMessage{}, string(MsgApply)+"|"+string(MsgReplay)+"|"+string(MsgPause)+"|"+string(MsgResume)),
		},
	}

	server := &jsonschema.Schema{
		Title:       "Server Message",
		Description: "Streamed by the server for one session.",
		OneOf: []*jsonschema.Schema{
			message(HelloMessage{}, string(MsgHello)),
			message(TrajectoryMessage{}, string(MsgTrajectory)),
			message(FrameMessage{}, string(MsgFrame)),
			message(ErrorMessage{}, string(MsgError)),
		},
	}

	return &jsonschema.Schema{
		Version:     jsonschema.Version,
		Title:       "Projectile Stream Protocol",
		Description: "JSON text frames exchanged over the projectile websocket.",
		OneOf:       []*jsonschema.Schema{client, server},
	}
}
