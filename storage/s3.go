// Package storage keeps wordlists in an S3 bucket so they can be shared between machines
package storage

import (
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	log "github.com/visionmedia/go-cli-log"
)

// New creates the bucket; an existing bucket owned by the caller is fine
func New(sess *session.Session, bucketName string) error {
	client := s3.New(sess)

	_, err := client.CreateBucket(
		&s3.CreateBucketInput{
			Bucket: aws.String(bucketName),
		},
	)

	if err != nil {
		if aerr, ok := err.(awserr.Error); ok {
			switch aerr.Code() {
			case s3.ErrCodeBucketAlreadyOwnedByYou:
				return nil
			}
		}
		return err
	}

	log.Info("Bucket", "created %s", bucketName)

	return nil
}

func ListFiles(sess *session.Session, bucketName, prefix string) ([]*s3.Object, error) {
	return listFiles(s3.New(sess), bucketName, prefix)
}

func listFiles(client s3iface.S3API, bucketName, prefix string) ([]*s3.Object, error) {
	var objects []*s3.Object

	err := client.ListObjectsV2Pages(&s3.ListObjectsV2Input{
		Bucket: aws.String(bucketName),
		Prefix: aws.String(prefix),
	}, func(page *s3.ListObjectsV2Output, _ bool) bool {
		objects = append(objects, page.Contents...)
		return true
	})

	if err != nil {
		return nil, err
	}

	return objects, nil
}

func Upload(sess *session.Session, filePath, bucketName, key string) error {
	uploader := s3manager.NewUploader(sess)

	f, err := os.Open(filePath)
	if err != nil {
		return err
	}
	defer f.Close()

	log.Info("Upload", "uploading %s to s3://%s/%s", filePath, bucketName, key)
	_, err = uploader.Upload(&s3manager.UploadInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(key),
		Body:   f,
	})

	if err != nil {
		return err
	}

	log.Info("Upload", "File successfully uploaded")

	return nil
}

func Delete(sess *session.Session, bucketName, key string) error {
	client := s3.New(sess)

	_, err := client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(key),
	})

	return err
}

// DeleteAll removes every object under prefix and returns how many were deleted
func DeleteAll(sess *session.Session, bucketName, prefix string) (int, error) {
	client := s3.New(sess)

	objects, err := listFiles(client, bucketName, prefix)
	if err != nil {
		return 0, err
	}

	for i, obj := range objects {
		_, err := client.DeleteObject(&s3.DeleteObjectInput{
			Bucket: aws.String(bucketName),
			Key:    obj.Key,
		})
		if err != nil {
			return i, err
		}
	}

	return len(objects), nil
}

// DeleteBucket only succeeds on an empty bucket
func DeleteBucket(sess *session.Session, bucketName string) error {
	client := s3.New(sess)

	_, err := client.DeleteBucket(&s3.DeleteBucketInput{
		Bucket: aws.String(bucketName),
	})

	return err
}

// StatMultiple checks that every key exists before a run starts
func StatMultiple(sess *session.Session, bucketName string, keys ...string) error {
	return statMultiple(s3.New(sess), bucketName, keys...)
}

func statMultiple(client s3iface.S3API, bucketName string, keys ...string) error {
	for _, key := range keys {
		_, err := client.HeadObject(&s3.HeadObjectInput{
			Bucket: aws.String(bucketName),
			Key:    aws.String(key),
		})

		if err != nil {
			return fmt.Errorf("s3://%s/%s: %w", bucketName, key, err)
		}
	}

	return nil
}
