package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	sc "github.com/dmitrijs2005/recipebook/internal/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *sc.Config {
	return &sc.Config{
		S3Region:       "us-east-1",
		S3RootUser:     "minioadmin",
		S3RootPassword: "minioadmin",
		S3BaseEndpoint: "http://127.0.0.1:9000",
		S3Bucket:       "recipes",
		PresignTTL:     5 * time.Minute,
	}
}

// stubAWS replaces the S3 seams for the duration of the test.
func stubAWS(t *testing.T) {
	t.Helper()
	origLoad := loadDefaultAWSConfig
	origNewS3 := newS3ClientFromConfig
	origNewPre := newS3PresignClient
	origGet := presignGetObject
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNewS3
		newS3PresignClient = origNewPre
		presignGetObject = origGet
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, nil
	}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return &s3.Client{}
	}
	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return &s3.PresignClient{}
	}
}

func TestS3Presigner_client_AppliesConfig(t *testing.T) {
	stubAWS(t)

	var region, endpoint string
	var pathStyle bool
	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			require.NoError(t, fn(&lo))
		}
		region = lo.Region
		return aws.Config{}, nil
	}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		var opts s3.Options
		for _, fn := range optFns {
			fn(&opts)
		}
		endpoint = aws.ToString(opts.BaseEndpoint)
		pathStyle = opts.UsePathStyle
		return &s3.Client{}
	}

	pc, err := NewS3Presigner(testConfig()).client(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, pc)
	assert.Equal(t, "us-east-1", region)
	assert.Equal(t, "http://127.0.0.1:9000", endpoint)
	assert.True(t, pathStyle)
}

func TestS3Presigner_PresignGet(t *testing.T) {
	stubAWS(t)

	var bucket, key string
	var expires time.Duration
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		bucket, key = aws.ToString(in.Bucket), aws.ToString(in.Key)
		var po s3.PresignOptions
		for _, fn := range optFns {
			fn(&po)
		}
		expires = po.Expires
		return &v4.PresignedHTTPRequest{URL: "http://s3/recipes/" + key + "?sig=1"}, nil
	}

	url, err := NewS3Presigner(testConfig()).PresignGet(context.Background(), "img/42.png")
	require.NoError(t, err)
	assert.Equal(t, "http://s3/recipes/img/42.png?sig=1", url)
	assert.Equal(t, "recipes", bucket)
	assert.Equal(t, "img/42.png", key)
	assert.Equal(t, 5*time.Minute, expires)
}

func TestS3Presigner_Errors(t *testing.T) {
	t.Run("config load", func(t *testing.T) {
		stubAWS(t)
		loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
			return aws.Config{}, errors.New("load-fail")
		}

		_, err := NewS3Presigner(testConfig()).PresignGet(context.Background(), "k")
		require.EqualError(t, err, "load-fail")
	})

	t.Run("presign", func(t *testing.T) {
		stubAWS(t)
		presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
			return nil, errors.New("presign-fail")
		}

		_, err := NewS3Presigner(testConfig()).PresignGet(context.Background(), "k")
		require.EqualError(t, err, "presign-fail")
	})
}
