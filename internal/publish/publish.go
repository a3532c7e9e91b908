// Package publish renders component pages and uploads the results to
// S3.
package publish

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/justinyaodu/htmlcomp/pkg/elements"
	"github.com/justinyaodu/htmlcomp/pkg/htmlcomp"
)

// ObjectPutter is the subset of the S3 client the publisher uses.
// *s3.Client satisfies it.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Publisher renders source pages and uploads them to an S3 bucket.
type Publisher struct {
	client ObjectPutter
	bucket string
	prefix string
}

// Result records one uploaded page.
type Result struct {
	// Page is the source file path.
	Page string

	// Key is the destination object key.
	Key string

	// Size is the rendered output size in bytes.
	Size int
}

// New creates a Publisher targeting the given bucket. The prefix is
// prepended to every object key.
func New(client ObjectPutter, bucket, prefix string) *Publisher {
	elements.Register()
	return &Publisher{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}
}

// PublishDir renders every .html page under sourceDir and uploads the
// results. Object keys mirror the directory layout under the
// publisher's prefix. It stops at the first page that fails to render
// or upload.
func (p *Publisher) PublishDir(ctx context.Context, sourceDir string) ([]Result, error) {
	var results []Result

	err := filepath.Walk(sourceDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !strings.HasSuffix(path, ".html") {
			return nil
		}

		rel, err := filepath.Rel(sourceDir, path)
		if err != nil {
			return err
		}

		res, err := p.PublishFile(ctx, path, filepath.ToSlash(rel))
		if err != nil {
			return err
		}
		results = append(results, res)
		return nil
	})
	if err != nil {
		return results, err
	}
	return results, nil
}

// PublishFile renders a single page and uploads it under the given
// key (relative to the publisher's prefix).
func (p *Publisher) PublishFile(ctx context.Context, path, key string) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, err
	}

	root, err := htmlcomp.Parse(string(data))
	if err != nil {
		return Result{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	html, err := htmlcomp.String(root)
	if err != nil {
		return Result{}, fmt.Errorf("rendering %s: %w", path, err)
	}

	objectKey := p.prefix + key
	_, err = p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(objectKey),
		Body:        bytes.NewReader([]byte(html)),
		ContentType: aws.String("text/html; charset=utf-8"),
		Metadata: map[string]string{
			"source-page":  key,
			"publish-time": time.Now().UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		return Result{}, fmt.Errorf("uploading %s: %w", objectKey, err)
	}

	return Result{Page: path, Key: objectKey, Size: len(html)}, nil
}
