package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/vncsmyrnk/votepage/internal/core/domain"
	"github.com/vncsmyrnk/votepage/internal/core/ports"
)

const (
	attrImageHash      = "ImageHash"
	attrCategory1      = "Category1"
	attrCategory2      = "Category2"
	attrCategory1Votes = "Category1Votes"
	attrCategory2Votes = "Category2Votes"
)

// API is the subset of the DynamoDB client the repository calls.
type API interface {
	dynamodb.QueryAPIClient
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
}

type voteRepository struct {
	client    API
	tableName *string
}

func NewVoteRepository(client API, tableName string) ports.VoteRepository {
	return &voteRepository{
		client:    client,
		tableName: aws.String(tableName),
	}
}

func (r *voteRepository) Put(ctx context.Context, record *domain.VoteRecord) error {
	item, err := attributevalue.MarshalMap(record)
	if err != nil {
		return fmt.Errorf("failed to marshal vote record: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: r.tableName,
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("failed to put vote record: %w", err)
	}
	return nil
}

// RecordVote adds the vote to the stored counts in a single UpdateItem, so
// concurrent submissions never overwrite each other. Category labels are only
// set when the record does not have them yet.
func (r *voteRepository) RecordVote(ctx context.Context, vote domain.Vote) error {
	category1, category2 := vote.Increments()

	update := expression.
		Add(expression.Name(attrCategory1Votes), expression.Value(category1)).
		Add(expression.Name(attrCategory2Votes), expression.Value(category2))
	if vote.Category1 != "" {
		update = update.Set(expression.Name(attrCategory1),
			expression.IfNotExists(expression.Name(attrCategory1), expression.Value(vote.Category1)))
	}
	if vote.Category2 != "" {
		update = update.Set(expression.Name(attrCategory2),
			expression.IfNotExists(expression.Name(attrCategory2), expression.Value(vote.Category2)))
	}

	expr, err := expression.NewBuilder().WithUpdate(update).Build()
	if err != nil {
		return fmt.Errorf("failed to build update expression: %w", err)
	}

	key, err := attributevalue.MarshalMap(map[string]string{attrImageHash: vote.ImageHash})
	if err != nil {
		return fmt.Errorf("failed to marshal key: %w", err)
	}

	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 r.tableName,
		Key:                       key,
		UpdateExpression:          expr.Update(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		return fmt.Errorf("failed to record vote for %q: %w", vote.ImageHash, err)
	}
	return nil
}

func (r *voteRepository) QueryByImageHash(ctx context.Context, imageHash string) ([]domain.VoteRecord, error) {
	keyCond := expression.Key(attrImageHash).Equal(expression.Value(imageHash))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build key condition: %w", err)
	}

	paginator := dynamodb.NewQueryPaginator(r.client, &dynamodb.QueryInput{
		TableName:                 r.tableName,
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})

	records := []domain.VoteRecord{}
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to query votes for %q: %w", imageHash, err)
		}

		var batch []domain.VoteRecord
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			return nil, fmt.Errorf("failed to unmarshal votes: %w", err)
		}
		records = append(records, batch...)
	}

	return records, nil
}
