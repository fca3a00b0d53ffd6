package ingest

import (
	"context"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

// WalkS3 lists object keys under dir.Prefix in dir.Bucket whose suffix
// matches one of dir.Extensions — the object-storage analogue of Walk,
// for deployments that stage incoming batches in S3 rather than on a
// local volume. api is typically an *s3.S3 built from a shared AWS
// session; accepting the s3iface.S3API interface keeps this testable
// against a fake.
func WalkS3(ctx context.Context, api s3iface.S3API, dir S3Dir) ([]string, error) {
	var keys []string

	input := &s3.ListObjectsV2Input{
		Bucket: aws.String(dir.Bucket),
		Prefix: aws.String(dir.Prefix),
	}

	err := api.ListObjectsV2PagesWithContext(ctx, input, func(page *s3.ListObjectsV2Output, lastPage bool) bool {
		for _, obj := range page.Contents {
			key := aws.StringValue(obj.Key)
			if matchesExtensions(key, dir.Extensions) {
				keys = append(keys, key)
			}
		}

		return true // keep paging through to the end
	})
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return nil, ErrNoMatchingFiles
	}

	return keys, nil
}
