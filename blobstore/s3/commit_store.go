package s3

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/hupe1980/vect/blobstore"
)

// ErrConcurrentCommit is returned when another writer claimed the next
// version first. The caller may retry with a fresh Commit.
var ErrConcurrentCommit = errors.New("concurrent commit detected")

// DynamoDBClient is the subset of the DynamoDB API the commit store
// uses. *dynamodb.Client satisfies it.
type DynamoDBClient interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// CommitStore tracks the latest committed snapshot of a series in
// DynamoDB, providing the compare-and-swap that S3 lacks.
//
// Table schema:
//   - Partition key: series (string)
//   - Sort key: version (number), monotonically increasing
//
// Create the table with:
//
//	aws dynamodb create-table \
//	  --table-name vect-commits \
//	  --attribute-definitions AttributeName=series,AttributeType=S AttributeName=version,AttributeType=N \
//	  --key-schema AttributeName=series,KeyType=HASH AttributeName=version,KeyType=RANGE \
//	  --billing-mode PAY_PER_REQUEST
type CommitStore struct {
	client DynamoDBClient
	table  string
	series string
}

// NewCommitStore creates a commit store for one snapshot series.
func NewCommitStore(client DynamoDBClient, table, series string) *CommitStore {
	return &CommitStore{
		client: client,
		table:  table,
		series: series,
	}
}

// Current returns the most recently committed snapshot name and its
// version. A series with no commits yields blobstore.ErrNotFound.
func (c *CommitStore) Current(ctx context.Context) (string, uint64, error) {
	resp, err := c.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(c.table),
		KeyConditionExpression: aws.String("series = :series"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":series": &types.AttributeValueMemberS{Value: c.series},
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(1),
	})
	if err != nil {
		return "", 0, fmt.Errorf("query latest commit: %w", err)
	}
	if len(resp.Items) == 0 {
		return "", 0, blobstore.ErrNotFound
	}

	item := resp.Items[0]
	versionAttr, ok := item["version"].(*types.AttributeValueMemberN)
	if !ok {
		return "", 0, errors.New("invalid version attribute")
	}
	nameAttr, ok := item["snapshot"].(*types.AttributeValueMemberS)
	if !ok {
		return "", 0, errors.New("invalid snapshot attribute")
	}

	version, err := strconv.ParseUint(versionAttr.Value, 10, 64)
	if err != nil {
		return "", 0, fmt.Errorf("parse version: %w", err)
	}
	return nameAttr.Value, version, nil
}

// Commit records name as the next version of the series and returns
// the claimed version. The conditional write guarantees a racing
// writer cannot claim the same version; the loser gets
// ErrConcurrentCommit.
func (c *CommitStore) Commit(ctx context.Context, name string) (uint64, error) {
	_, currentVersion, err := c.Current(ctx)
	if err != nil && !errors.Is(err, blobstore.ErrNotFound) {
		return 0, err
	}

	newVersion := currentVersion + 1
	_, err = c.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(c.table),
		Item: map[string]types.AttributeValue{
			"series":   &types.AttributeValueMemberS{Value: c.series},
			"version":  &types.AttributeValueMemberN{Value: strconv.FormatUint(newVersion, 10)},
			"snapshot": &types.AttributeValueMemberS{Value: name},
		},
		ConditionExpression: aws.String("attribute_not_exists(version)"),
	})
	if err != nil {
		var condErr *types.ConditionalCheckFailedException
		if errors.As(err, &condErr) {
			return 0, ErrConcurrentCommit
		}
		return 0, fmt.Errorf("commit version %d: %w", newVersion, err)
	}
	return newVersion, nil
}
