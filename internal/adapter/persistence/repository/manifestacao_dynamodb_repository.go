package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"ouvidoria/internal/domain/entities"
	"ouvidoria/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultManifestacoesTableName = "manifestacoes"
	ManifestacoesProtocoloIndex   = "protocolo-index"
)

type manifestacaoItem struct {
	ID              string `dynamodbav:"id"`
	Protocolo       string `dynamodbav:"protocolo"`
	Nome            string `dynamodbav:"nome"`
	Email           string `dynamodbav:"email"`
	EmailLC         string `dynamodbav:"email_lc"`
	Telefone        string `dynamodbav:"telefone"`
	Tipo            string `dynamodbav:"tipo"`
	Status          string `dynamodbav:"status"`
	Assunto         string `dynamodbav:"assunto,omitempty"`
	Descricao       string `dynamodbav:"descricao"`
	Endereco        string `dynamodbav:"endereco"`
	Observacoes     string `dynamodbav:"observacoes,omitempty"`
	DataCriacao     string `dynamodbav:"data_criacao"`
	DataAtualizacao string `dynamodbav:"data_atualizacao,omitempty"`
}

// DynamoDBAPI is the subset of the DynamoDB client used by the repository.
type DynamoDBAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
}

// ManifestacaoDynamoRepository persists Manifestacao entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: protocolo-index (PK: protocolo)
//
// Listing scans the table; the volume of an ouvidoria is small enough for that.
type ManifestacaoDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IManifestacaoRepository = (*ManifestacaoDynamoRepository)(nil)

// NewManifestacaoDynamoRepository uses tableName, falling back to MANIFESTACOES_TABLE
// and then to "manifestacoes".
func NewManifestacaoDynamoRepository(ddb DynamoDBAPI, tableName string) *ManifestacaoDynamoRepository {
	if strings.TrimSpace(tableName) == "" {
		tableName = getenvDefault("MANIFESTACOES_TABLE", DefaultManifestacoesTableName)
	}
	return &ManifestacaoDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ManifestacaoDynamoRepository) Create(ctx context.Context, m entities.Manifestacao) (entities.Manifestacao, error) {
	av, err := attributevalue.MarshalMap(toManifestacaoItem(m))
	if err != nil {
		return entities.Manifestacao{}, err
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
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Manifestacao{}, ErrDuplicateID
		}
		return entities.Manifestacao{}, err
	}
	return m, nil
}

func (r *ManifestacaoDynamoRepository) GetByID(ctx context.Context, id string) (entities.Manifestacao, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Manifestacao{}, err
	}
	if len(out.Item) == 0 {
		return entities.Manifestacao{}, nil
	}
	return unmarshalManifestacao(out.Item)
}

func (r *ManifestacaoDynamoRepository) GetByProtocolo(ctx context.Context, protocolo string) (entities.Manifestacao, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ManifestacoesProtocoloIndex),
		KeyConditionExpression: aws.String("protocolo = :p"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":p": &types.AttributeValueMemberS{Value: protocolo},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Manifestacao{}, err
	}
	if len(out.Items) == 0 {
		return entities.Manifestacao{}, nil
	}
	return unmarshalManifestacao(out.Items[0])
}

func (r *ManifestacaoDynamoRepository) List(ctx context.Context, f entities.Filtros) ([]entities.Manifestacao, error) {
	input := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if expr, values, names := buildScanFilter(f); expr != "" {
		input.FilterExpression = aws.String(expr)
		input.ExpressionAttributeValues = values
		input.ExpressionAttributeNames = names
	}

	items := make([]entities.Manifestacao, 0)
	paginator := dynamodb.NewScanPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			m, err := unmarshalManifestacao(raw)
			if err != nil {
				return nil, err
			}
			if f.Match(m) {
				items = append(items, m)
			}
		}
	}
	return items, nil
}

func (r *ManifestacaoDynamoRepository) UpdateStatus(ctx context.Context, id string, upd entities.AtualizarStatus, at time.Time) (entities.Manifestacao, error) {
	expr := "SET #status = :status, #data_atualizacao = :data_atualizacao"
	values := map[string]types.AttributeValue{
		":status":           &types.AttributeValueMemberS{Value: string(upd.Status)},
		":data_atualizacao": &types.AttributeValueMemberS{Value: formatTime(at)},
	}
	names := map[string]string{
		"#status":           "status",
		"#data_atualizacao": "data_atualizacao",
	}
	if upd.Observacoes != "" {
		expr += ", #observacoes = :observacoes"
		values[":observacoes"] = &types.AttributeValueMemberS{Value: upd.Observacoes}
	} else {
		expr += " REMOVE #observacoes"
	}
	names["#observacoes"] = "observacoes"

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Manifestacao{}, nil
		}
		return entities.Manifestacao{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Manifestacao{}, nil
	}
	return unmarshalManifestacao(out.Attributes)
}

func unmarshalManifestacao(raw map[string]types.AttributeValue) (entities.Manifestacao, error) {
	var it manifestacaoItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Manifestacao{}, err
	}
	return fromManifestacaoItem(it), nil
}

func toManifestacaoItem(m entities.Manifestacao) manifestacaoItem {
	it := manifestacaoItem{
		ID:          m.ID,
		Protocolo:   m.Protocolo,
		Nome:        m.Nome,
		Email:       m.Email,
		EmailLC:     strings.ToLower(m.Email),
		Telefone:    m.Telefone,
		Tipo:        string(m.Tipo),
		Status:      string(m.Status),
		Assunto:     m.Assunto,
		Descricao:   m.Descricao,
		Endereco:    m.Endereco,
		Observacoes: m.Observacoes,
		DataCriacao: formatTime(m.DataCriacao),
	}
	if m.DataAtualizacao != nil {
		it.DataAtualizacao = formatTime(*m.DataAtualizacao)
	}
	return it
}

func fromManifestacaoItem(it manifestacaoItem) entities.Manifestacao {
	m := entities.Manifestacao{
		ID:          it.ID,
		Protocolo:   it.Protocolo,
		Nome:        it.Nome,
		Email:       it.Email,
		Telefone:    it.Telefone,
		Tipo:        entities.TipoManifestacao(it.Tipo),
		Status:      entities.StatusManifestacao(it.Status),
		Assunto:     it.Assunto,
		Descricao:   it.Descricao,
		Endereco:    it.Endereco,
		Observacoes: it.Observacoes,
		DataCriacao: parseTime(it.DataCriacao),
	}
	if it.DataAtualizacao != "" {
		t := parseTime(it.DataAtualizacao)
		m.DataAtualizacao = &t
	}
	return m
}
