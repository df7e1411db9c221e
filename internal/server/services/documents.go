package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/loangate/loangate/internal/common"
	sc "github.com/loangate/loangate/internal/server/config"
	"github.com/loangate/loangate/internal/server/models"
	"github.com/loangate/loangate/internal/server/repositories/repomanager"
)

// Seams for testing the AWS presign plumbing without a live endpoint.
var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// Document kinds a complete bundle must cover.
const (
	DocumentKindIDCard         = "idCard"
	DocumentKindAddressProof   = "addressProof"
	DocumentKindBankStatements = "bankStatements"
)

// DocumentUpload pairs a document kind with the presigned URL the client
// PUTs the file to and the storage key recorded for the bundle.
type DocumentUpload struct {
	Kind       string `json:"kind"`
	StorageKey string `json:"storageKey"`
	UploadURL  string `json:"uploadUrl"`
}

// DocumentLinks carries presigned GET URLs for a stored bundle.
type DocumentLinks struct {
	IDCardURL         string `json:"idCardUrl"`
	AddressProofURL   string `json:"addressProofUrl"`
	BankStatementsURL string `json:"bankStatementsUrl"`
}

// DocumentService records loan document bundles and hands out presigned
// object-store URLs. File bytes never pass through this process: clients
// transfer directly against the store.
type DocumentService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *sc.Config
}

func NewDocumentService(db *sql.DB, m repomanager.RepositoryManager, cfg *sc.Config) *DocumentService {
	return &DocumentService{db: db, repomanager: m, config: cfg}
}

func storageKey(applicationID, kind string) string {
	d := time.Now()
	return fmt.Sprintf("loans/%s/%s/%d/%d/%d/%v", applicationID, kind, d.Year(), d.Month(), d.Day(), uuid.New())
}

func (s *DocumentService) getPresignClient() (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(context.Background(),
		awsconfig.WithRegion(s.config.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
	})

	return newS3PresignClient(client), nil
}

func (s *DocumentService) presignPut(ctx context.Context, pc *s3.PresignClient, key string) (string, error) {
	bucket := s.config.S3Bucket

	req, err := presignPutObject(pc, ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return "", err
	}

	return req.URL, nil
}

func (s *DocumentService) presignGet(ctx context.Context, pc *s3.PresignClient, key string) (string, error) {
	bucket := s.config.S3Bucket

	req, err := presignGetObject(pc, ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return "", err
	}

	return req.URL, nil
}

// Submit allocates storage keys for the three required document kinds,
// records the bundle, and returns presigned PUT URLs for each kind.
func (s *DocumentService) Submit(ctx context.Context, applicationID, email string) (*models.LoanDocuments, []DocumentUpload, error) {

	if applicationID == "" || email == "" {
		return nil, nil, common.ErrValidation
	}

	pc, err := s.getPresignClient()
	if err != nil {
		return nil, nil, fmt.Errorf("presign client: %w", err)
	}

	kinds := []string{DocumentKindIDCard, DocumentKindAddressProof, DocumentKindBankStatements}
	uploads := make([]DocumentUpload, 0, len(kinds))
	keys := map[string]string{}

	for _, kind := range kinds {
		key := storageKey(applicationID, kind)
		url, err := s.presignPut(ctx, pc, key)
		if err != nil {
			return nil, nil, fmt.Errorf("presigning %s: %w", kind, err)
		}
		keys[kind] = key
		uploads = append(uploads, DocumentUpload{Kind: kind, StorageKey: key, UploadURL: url})
	}

	docs := &models.LoanDocuments{
		ApplicationID:     applicationID,
		Email:             email,
		IDCardKey:         keys[DocumentKindIDCard],
		AddressProofKey:   keys[DocumentKindAddressProof],
		BankStatementsKey: keys[DocumentKindBankStatements],
	}

	docs, err = s.repomanager.LoanDocuments(s.db).Create(ctx, docs)
	if err != nil {
		return nil, nil, err
	}

	return docs, uploads, nil
}

// Fetch returns the bundle for an application along with presigned GET URLs
// for each stored document.
func (s *DocumentService) Fetch(ctx context.Context, applicationID string) (*models.LoanDocuments, *DocumentLinks, error) {

	if applicationID == "" {
		return nil, nil, common.ErrValidation
	}

	docs, err := s.repomanager.LoanDocuments(s.db).GetByApplicationID(ctx, applicationID)
	if err != nil {
		return nil, nil, err
	}

	pc, err := s.getPresignClient()
	if err != nil {
		return nil, nil, fmt.Errorf("presign client: %w", err)
	}

	links := &DocumentLinks{}
	if links.IDCardURL, err = s.presignGet(ctx, pc, docs.IDCardKey); err != nil {
		return nil, nil, err
	}
	if links.AddressProofURL, err = s.presignGet(ctx, pc, docs.AddressProofKey); err != nil {
		return nil, nil, err
	}
	if links.BankStatementsURL, err = s.presignGet(ctx, pc, docs.BankStatementsKey); err != nil {
		return nil, nil, err
	}

	return docs, links, nil
}
