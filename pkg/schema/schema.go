// Package schema defines the Avro wire schemas the service produces
// and their schema-registry backed serdes.
package schema

import (
	"context"

	"github.com/twmb/franz-go/pkg/sr"
)

type Encoder interface {
	Encode(v any) ([]byte, error)
}

type Decoder interface {
	Decode(data []byte, v any) error
}

type Serde interface {
	Encoder
	Decoder
}

// A SchemaIdentifier resolves the registry id for a subject's schema,
// registering it when it is not known yet.
type SchemaIdentifier interface {
	DetermineID(ctx context.Context, subject, avroSchemaText string) (int, error)
}

type SchemaCreater struct {
	cl *sr.Client
}

func NewSchemaCreater(cl *sr.Client) SchemaCreater {
	return SchemaCreater{cl}
}

func (c SchemaCreater) DetermineID(
	ctx context.Context, subject, avroSchemaText string,
) (int, error) {
	ss, err := c.cl.CreateSchema(ctx, subject, sr.Schema{
		Schema: avroSchemaText,
		Type:   sr.TypeAvro,
	})
	if err != nil {
		return 0, err
	}
	return ss.ID, nil
}
