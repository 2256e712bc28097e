package storage

import (
	"context"
	"errors"
	"io/ioutil"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saltcrackr/source"
)

var errNoSuchKey = errors.New("NoSuchKey")

type fakeS3 struct {
	s3iface.S3API
	objects map[string]string
	gets    int
}

func (f *fakeS3) GetObjectWithContext(_ aws.Context, in *s3.GetObjectInput, _ ...request.Option) (*s3.GetObjectOutput, error) {
	f.gets++
	body, ok := f.objects[*in.Key]
	if !ok {
		return nil, errNoSuchKey
	}

	return &s3.GetObjectOutput{Body: ioutil.NopCloser(strings.NewReader(body))}, nil
}

func (f *fakeS3) HeadObject(in *s3.HeadObjectInput) (*s3.HeadObjectOutput, error) {
	if _, ok := f.objects[*in.Key]; !ok {
		return nil, errNoSuchKey
	}
	return &s3.HeadObjectOutput{}, nil
}

func (f *fakeS3) ListObjectsV2Pages(in *s3.ListObjectsV2Input, fn func(*s3.ListObjectsV2Output, bool) bool) error {
	var page s3.ListObjectsV2Output
	for key := range f.objects {
		if strings.HasPrefix(key, *in.Prefix) {
			page.Contents = append(page.Contents, &s3.Object{Key: aws.String(key)})
		}
	}

	fn(&page, true)
	return nil
}

func newFake() *fakeS3 {
	return &fakeS3{objects: map[string]string{
		"wordlist/rockyou.txt": "123456\n\npassword\n  iloveyou \n",
		"wordlist/extra.txt":   "letmein\n",
		"hash/users.txt":       "admin:172eee54aa664e9dd0536b063796e54e\n",
	}}
}

func TestObject(t *testing.T) {
	client := newFake()
	obj := NewObject(client, "crackr", "wordlist/rockyou.txt")

	for i := 0; i < 2; i++ {
		words, err := source.Collect(context.Background(), obj)
		require.NoError(t, err)
		assert.Equal(t, []string{"123456", "password", "iloveyou"}, words)
	}

	assert.Equal(t, 2, client.gets)
	assert.Equal(t, "s3://crackr/wordlist/rockyou.txt", obj.String())

	_, known := obj.Size(context.Background())
	assert.False(t, known)
}

func TestObject_Missing(t *testing.T) {
	obj := NewObject(newFake(), "crackr", "wordlist/nope.txt")

	_, err := obj.Open(context.Background())
	assert.ErrorIs(t, err, errNoSuchKey)
}

func TestStatMultiple(t *testing.T) {
	client := newFake()

	assert.NoError(t, statMultiple(client, "crackr", "wordlist/rockyou.txt", "wordlist/extra.txt"))

	err := statMultiple(client, "crackr", "wordlist/rockyou.txt", "wordlist/nope.txt")
	assert.ErrorIs(t, err, errNoSuchKey)
	assert.Contains(t, err.Error(), "s3://crackr/wordlist/nope.txt")
}

func TestListFiles(t *testing.T) {
	objects, err := listFiles(newFake(), "crackr", "wordlist/")
	require.NoError(t, err)
	assert.Len(t, objects, 2)
}
