package services

import (
	"context"
	"fmt"
	"time"

	"sendaboop-backend/internal/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// catalog is the boopable dog lineup shown by the picker
var catalog = []models.Dog{
	{ID: "golden-retriever", URL: "https://images.unsplash.com/photo-1552053831-71594a27632d?w=400&h=400&fit=crop", Alt: "Happy golden retriever with tongue out"},
	{ID: "corgi", URL: "https://images.unsplash.com/photo-1612536057832-2ff7ead58194?w=400&h=400&fit=crop", Alt: "Adorable corgi looking at camera"},
	{ID: "pug", URL: "https://images.unsplash.com/photo-1517849845537-4d257902454a?w=400&h=400&fit=crop", Alt: "Cute pug with head tilted"},
	{ID: "husky", URL: "https://images.unsplash.com/photo-1605568427561-40dd23c2acea?w=400&h=400&fit=crop", Alt: "Majestic husky with blue eyes"},
	{ID: "beagle", URL: "https://images.unsplash.com/photo-1505628346881-b72b27e84530?w=400&h=400&fit=crop", Alt: "Sweet beagle puppy face"},
	{ID: "labrador", URL: "https://images.unsplash.com/photo-1579213838058-1cf0a5f12cd9?w=400&h=400&fit=crop", Alt: "Friendly black labrador"},
	{ID: "shiba", URL: "https://images.unsplash.com/photo-1583337130417-3346a1be7dee?w=400&h=400&fit=crop", Alt: "Smiling shiba inu"},
	{ID: "dachshund", URL: "https://images.unsplash.com/photo-1518020382113-a7e8fc38eac9?w=400&h=400&fit=crop", Alt: "Cute dachshund close-up"},
	{ID: "poodle", URL: "https://images.unsplash.com/photo-1616149411108-e3c2f578f4bc?w=400&h=400&fit=crop", Alt: "Fluffy white poodle"},
	{ID: "bulldog", URL: "https://images.unsplash.com/photo-1583511655857-d19b40a7a54e?w=400&h=400&fit=crop", Alt: "French bulldog looking adorable"},
	{ID: "samoyed", URL: "https://images.unsplash.com/photo-1529429617124-95b109e86bb8?w=400&h=400&fit=crop", Alt: "Fluffy white samoyed smiling"},
	{ID: "border-collie", URL: "https://images.unsplash.com/photo-1503256207526-0d5d80fa2f47?w=400&h=400&fit=crop", Alt: "Attentive border collie"},
}

// DogService serves the dog catalog. With an S3 bucket configured the
// image URLs are presigned GETs against self-hosted copies under
// dogs/<id>.jpg; otherwise the static catalog URLs are returned as-is.
type DogService struct {
	s3Client *s3.Client
	s3Bucket string
}

// NewDogService creates a new dog service. bucket may be empty, in which
// case no AWS client is built and the static catalog is served.
func NewDogService(awsRegion, s3Bucket, accessKey, secretKey, endpoint string) (*DogService, error) {
	if s3Bucket == "" {
		return &DogService{}, nil
	}

	opts := []func(*config.LoadOptions) error{
		config.WithRegion(awsRegion),
	}
	if accessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	s3Client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	return &DogService{
		s3Client: s3Client,
		s3Bucket: s3Bucket,
	}, nil
}

// ListDogs returns the catalog with resolved image URLs
func (s *DogService) ListDogs(ctx context.Context) ([]models.Dog, error) {
	if s.s3Client == nil {
		return catalog, nil
	}

	presignClient := s3.NewPresignClient(s.s3Client)
	dogs := make([]models.Dog, 0, len(catalog))
	for _, dog := range catalog {
		s3Key := fmt.Sprintf("dogs/%s.jpg", dog.ID)
		request, err := presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
			Bucket: aws.String(s.s3Bucket),
			Key:    aws.String(s3Key),
		}, func(opts *s3.PresignOptions) {
			opts.Expires = 1 * time.Hour
		})
		if err != nil {
			return nil, fmt.Errorf("failed to presign dog image: %w", err)
		}
		dog.URL = request.URL
		dogs = append(dogs, dog)
	}

	return dogs, nil
}
