package resources

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/spf13/afero"
)

// S3Source names the bucket folder a card's resources are published under.
// The folder mirrors the DirProvider layout (strings.json, images/...).
type S3Source struct {
	Bucket string
	Prefix string
}

// NewS3Client builds a client from AWS_DEFAULT_REGION, AWS_ACCESS_KEY_ID and
// AWS_SECRET_ACCESS_KEY
func NewS3Client() (s3iface.S3API, error) {
	region := os.Getenv("AWS_DEFAULT_REGION")
	accessKey := os.Getenv("AWS_ACCESS_KEY_ID")
	secretKey := os.Getenv("AWS_SECRET_ACCESS_KEY")

	if region == "" || accessKey == "" || secretKey == "" {
		return nil, errors.New("missing one or more required environment variables: AWS_DEFAULT_REGION, AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY")
	}

	sess, err := session.NewSession(&aws.Config{
		Region:      aws.String(region),
		Credentials: credentials.NewStaticCredentials(accessKey, secretKey, ""),
	})
	if err != nil {
		return nil, err
	}
	return s3.New(sess), nil
}

// SyncFromS3 copies every object under src into cache below root, keeping
// each key's path relative to the prefix. It returns the number of files
// written. Objects that fail to download are logged and skipped; the caller
// finds out through ErrResourceNotFound on lookup.
func SyncFromS3(client s3iface.S3API, src S3Source, cache afero.Fs, root string) (int, error) {
	log.Printf("SyncFromS3 called | bucket=%s | prefix=%s", src.Bucket, src.Prefix)

	if err := cache.MkdirAll(root, os.ModePerm); err != nil {
		return 0, err
	}

	listInput := &s3.ListObjectsV2Input{
		Bucket: aws.String(src.Bucket),
		Prefix: aws.String(src.Prefix),
	}

	var keys []string
	if err := client.ListObjectsV2Pages(listInput, func(page *s3.ListObjectsV2Output, lastPage bool) bool {
		for _, obj := range page.Contents {
			if obj.Key == nil || strings.HasSuffix(*obj.Key, "/") {
				continue // skip empty keys or "directories"
			}
			keys = append(keys, *obj.Key)
		}
		return !lastPage
	}); err != nil {
		return 0, fmt.Errorf("failed to list s3://%s/%s: %w", src.Bucket, src.Prefix, err)
	}

	written := 0
	for _, key := range keys {
		rel := filepath.FromSlash(strings.TrimPrefix(strings.TrimPrefix(key, src.Prefix), "/"))
		if rel == "" {
			continue
		}
		if !filepath.IsLocal(rel) {
			log.Printf("skipping %s: path escapes the cache root", key)
			continue
		}
		if err := downloadObject(client, src.Bucket, key, cache, filepath.Join(root, rel)); err != nil {
			log.Printf("failed to download %s: %v", key, err)
			continue
		}
		written++
	}

	log.Printf("SyncFromS3 completed | listed=%d | downloaded=%d", len(keys), written)
	return written, nil
}

// downloadObject writes the object next to localPath and renames it into
// place once complete, so a failed download never leaves a partial file
func downloadObject(client s3iface.S3API, bucket, key string, cache afero.Fs, localPath string) error {
	result, err := client.GetObject(&s3.GetObjectInput{Bucket: aws.String(bucket), Key: aws.String(key)})
	if err != nil {
		return err
	}
	defer result.Body.Close()

	if err := cache.MkdirAll(filepath.Dir(localPath), os.ModePerm); err != nil {
		return err
	}
	tmpPath := localPath + ".part"
	outFile, err := cache.Create(tmpPath)
	if err != nil {
		return err
	}

	_, err = io.Copy(outFile, result.Body)
	if closeErr := outFile.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		cache.Remove(tmpPath)
		return err
	}
	return cache.Rename(tmpPath, localPath)
}
