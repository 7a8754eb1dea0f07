package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"cotfact/internal/domain/entities"
	"cotfact/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultDocumentsTableName = "documents"

type lineItemItem struct {
	ID          string `dynamodbav:"id"`
	Description string `dynamodbav:"description"`
	Quantity    string `dynamodbav:"quantity"`
	UnitPrice   string `dynamodbav:"unit_price"`
	Total       string `dynamodbav:"total"`
}

type paymentMethodItem struct {
	ID            string `dynamodbav:"id"`
	Bank          string `dynamodbav:"bank,omitempty"`
	AccountHolder string `dynamodbav:"account_holder,omitempty"`
	AccountNumber string `dynamodbav:"account_number,omitempty"`
	AccountType   string `dynamodbav:"account_type,omitempty"`
	IsYappy       bool   `dynamodbav:"is_yappy,omitempty"`
	YappyPhone    string `dynamodbav:"yappy_phone,omitempty"`
}

type documentItem struct {
	ID                 string              `dynamodbav:"id"`
	DocumentNumber     string              `dynamodbav:"document_number"`
	Date               string              `dynamodbav:"date"`
	Customer           customerItem        `dynamodbav:"customer"`
	Items              []lineItemItem      `dynamodbav:"items"`
	Subtotal           string              `dynamodbav:"subtotal"`
	Tax                string              `dynamodbav:"tax"`
	Total              string              `dynamodbav:"total"`
	Status             string              `dynamodbav:"status"`
	Type               string              `dynamodbav:"type"`
	ValidDays          int                 `dynamodbav:"valid_days"`
	TermsAndConditions []string            `dynamodbav:"terms_and_conditions"`
	PaymentMethods     []paymentMethodItem `dynamodbav:"payment_methods"`
	SourceQuoteID      string              `dynamodbav:"source_quote_id,omitempty"`
	CreatedAt          string              `dynamodbav:"created_at"`
	UpdatedAt          string              `dynamodbav:"updated_at"`
}

// DocumentDynamoRepository persists Document entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Type-scoped listings and the source-quote lookup run as filtered scans.
// Volumes here are one owner's quotes and invoices, so a scan stays cheap;
// a GSI on type / source_quote_id is the upgrade path if that changes.

type DocumentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDocumentRepository = (*DocumentDynamoRepository)(nil)

func NewDocumentDynamoRepository(ddb *dynamodb.Client) *DocumentDynamoRepository {
	return &DocumentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DOCUMENTS_TABLE", defaultDocumentsTableName),
	}
}

func (r *DocumentDynamoRepository) Create(ctx context.Context, d entities.Document) (entities.Document, error) {
	av, err := attributevalue.MarshalMap(toDocumentItem(d))
	if err != nil {
		return entities.Document{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Document{}, err
	}
	return d, nil
}

func (r *DocumentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Document, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Document{}, err
	}
	if len(out.Item) == 0 {
		return entities.Document{}, nil
	}

	var it documentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Document{}, err
	}
	return fromDocumentItem(it), nil
}

func (r *DocumentDynamoRepository) GetBySourceQuoteID(ctx context.Context, quoteID string) (entities.Document, error) {
	docs, err := r.scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#src = :src"),
		ExpressionAttributeNames: map[string]string{
			"#src": "source_quote_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":src": &types.AttributeValueMemberS{Value: quoteID},
		},
	})
	if err != nil {
		return entities.Document{}, err
	}
	if len(docs) == 0 {
		return entities.Document{}, nil
	}
	return docs[0], nil
}

func (r *DocumentDynamoRepository) List(ctx context.Context) ([]entities.Document, error) {
	return r.scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
}

func (r *DocumentDynamoRepository) ListByType(ctx context.Context, t entities.DocumentType) ([]entities.Document, error) {
	return r.scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#type = :type"),
		ExpressionAttributeNames: map[string]string{
			"#type": "type",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":type": &types.AttributeValueMemberS{Value: string(t)},
		},
	})
}

func (r *DocumentDynamoRepository) Update(ctx context.Context, d entities.Document) (entities.Document, error) {
	d.UpdatedAt = time.Now().UTC()
	av, err := attributevalue.MarshalMap(toDocumentItem(d))
	if err != nil {
		return entities.Document{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Document{}, nil
		}
		return entities.Document{}, err
	}
	return d, nil
}

func (r *DocumentDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *DocumentDynamoRepository) scan(ctx context.Context, input *dynamodb.ScanInput) ([]entities.Document, error) {
	documents := []entities.Document{}

	paginator := dynamodb.NewScanPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []documentItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			documents = append(documents, fromDocumentItem(it))
		}
	}
	return documents, nil
}

func toDocumentItem(d entities.Document) documentItem {
	items := make([]lineItemItem, len(d.Items))
	for i, li := range d.Items {
		items[i] = lineItemItem{
			ID:          li.ID,
			Description: li.Description,
			Quantity:    floatToString(li.Quantity),
			UnitPrice:   floatToString(li.UnitPrice),
			Total:       floatToString(li.Total),
		}
	}
	methods := make([]paymentMethodItem, len(d.PaymentMethods))
	for i, pm := range d.PaymentMethods {
		methods[i] = paymentMethodItem{
			ID:            pm.ID,
			Bank:          pm.Bank,
			AccountHolder: pm.AccountHolder,
			AccountNumber: pm.AccountNumber,
			AccountType:   pm.AccountType,
			IsYappy:       pm.IsYappy,
			YappyPhone:    pm.YappyPhone,
		}
	}
	return documentItem{
		ID:                 d.ID,
		DocumentNumber:     d.DocumentNumber,
		Date:               d.Date,
		Customer:           toCustomerItem(d.Customer),
		Items:              items,
		Subtotal:           floatToString(d.Subtotal),
		Tax:                floatToString(d.Tax),
		Total:              floatToString(d.Total),
		Status:             string(d.Status),
		Type:               string(d.Type),
		ValidDays:          d.ValidDays,
		TermsAndConditions: d.TermsAndConditions,
		PaymentMethods:     methods,
		SourceQuoteID:      d.SourceQuoteID,
		CreatedAt:          d.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:          d.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromDocumentItem(it documentItem) entities.Document {
	items := make([]entities.LineItem, len(it.Items))
	for i, li := range it.Items {
		quantity, _ := strconv.ParseFloat(li.Quantity, 64)
		unitPrice, _ := strconv.ParseFloat(li.UnitPrice, 64)
		total, _ := strconv.ParseFloat(li.Total, 64)
		items[i] = entities.LineItem{
			ID:          li.ID,
			Description: li.Description,
			Quantity:    quantity,
			UnitPrice:   unitPrice,
			Total:       total,
		}
	}
	methods := make([]entities.PaymentMethod, len(it.PaymentMethods))
	for i, pm := range it.PaymentMethods {
		methods[i] = entities.PaymentMethod{
			ID:            pm.ID,
			Bank:          pm.Bank,
			AccountHolder: pm.AccountHolder,
			AccountNumber: pm.AccountNumber,
			AccountType:   pm.AccountType,
			IsYappy:       pm.IsYappy,
			YappyPhone:    pm.YappyPhone,
		}
	}
	terms := it.TermsAndConditions
	if terms == nil {
		terms = []string{}
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	subtotal, _ := strconv.ParseFloat(it.Subtotal, 64)
	tax, _ := strconv.ParseFloat(it.Tax, 64)
	total, _ := strconv.ParseFloat(it.Total, 64)
	return entities.Document{
		ID:                 it.ID,
		DocumentNumber:     it.DocumentNumber,
		Date:               it.Date,
		Customer:           fromCustomerItem(it.Customer),
		Items:              items,
		Subtotal:           subtotal,
		Tax:                tax,
		Total:              total,
		Status:             entities.DocumentStatus(it.Status),
		Type:               entities.DocumentType(it.Type),
		ValidDays:          it.ValidDays,
		TermsAndConditions: terms,
		PaymentMethods:     methods,
		SourceQuoteID:      it.SourceQuoteID,
		CreatedAt:          createdAt,
		UpdatedAt:          updatedAt,
	}
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
