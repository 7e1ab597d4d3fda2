package source

import (
	"context"
	"fmt"
	"io"
	"path"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Options configures an S3 bucket source. Endpoint and the static
// credential fields are only needed for S3-compatible stores (R2,
// MinIO); left empty, the default AWS credential chain is used.
type S3Options struct {
	Bucket  string
	Prefix  string
	Pattern string
	Region  string

	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

// S3 reads report files from an S3 or S3-compatible bucket.
type S3 struct {
	client *s3.Client
	opts   S3Options
}

// NewS3 creates an S3 bucket source.
func NewS3(ctx context.Context, opts S3Options) (*S3, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(opts.Region),
	}
	if opts.Endpoint != "" {
		endpoint := opts.Endpoint
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
			return aws.Endpoint{URL: endpoint}, nil
		})
		loadOpts = append(loadOpts, awsconfig.WithEndpointResolverWithOptions(resolver))
	}
	if opts.AccessKeyID != "" {
		loadOpts = append(loadOpts,
			awsconfig.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, "")))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return &S3{client: s3.NewFromConfig(cfg), opts: opts}, nil
}

// List returns the keys under the prefix whose base name matches the
// glob pattern, in lexical order across pagination.
func (s *S3) List(ctx context.Context) ([]string, error) {
	var names []string

	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.opts.Bucket),
		Prefix: aws.String(s.opts.Prefix),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list bucket %s: %w", s.opts.Bucket, err)
		}
		for _, obj := range page.Contents {
			key := aws.ToString(obj.Key)
			ok, err := path.Match(s.opts.Pattern, path.Base(key))
			if err != nil {
				return nil, fmt.Errorf("invalid file pattern %q: %w", s.opts.Pattern, err)
			}
			if ok {
				names = append(names, key)
			}
		}
	}

	sort.Strings(names)
	return names, nil
}

// Read fetches one object and returns its content as lines.
func (s *S3) Read(ctx context.Context, name string) ([]string, error) {
	result, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.opts.Bucket),
		Key:    aws.String(name),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get object %s: %w", name, err)
	}
	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read object body: %w", err)
	}
	return splitLines(data), nil
}
