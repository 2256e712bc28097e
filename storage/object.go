package storage

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"

	"saltcrackr/source"
)

// Object is a wordlist stored in S3, streamed again from the start on every Open
type Object struct {
	client s3iface.S3API
	Bucket string
	Key    string
}

func NewObject(client s3iface.S3API, bucketName, key string) *Object {
	return &Object{client: client, Bucket: bucketName, Key: key}
}

// Objects builds one source per key, sharing a client
func Objects(sess *session.Session, bucketName string, keys ...string) []source.Source {
	client := s3.New(sess)

	out := make([]source.Source, 0, len(keys))
	for _, key := range keys {
		out = append(out, NewObject(client, bucketName, key))
	}

	return out
}

func (o *Object) Open(ctx context.Context) (source.Cursor, error) {
	out, err := o.client.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(o.Bucket),
		Key:    aws.String(o.Key),
	})

	if err != nil {
		return nil, fmt.Errorf("s3://%s/%s: %w", o.Bucket, o.Key, err)
	}

	return source.NewLineCursor(out.Body), nil
}

// Size is unknown, counting would mean downloading the object twice
func (o *Object) Size(_ context.Context) (int64, bool) {
	return 0, false
}

func (o *Object) String() string {
	return fmt.Sprintf("s3://%s/%s", o.Bucket, o.Key)
}
