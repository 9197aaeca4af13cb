package repository

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"ouvidoria/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type fakeDynamo struct {
	put    *dynamodb.PutItemInput
	query  *dynamodb.QueryInput
	scans  []*dynamodb.ScanInput
	update *dynamodb.UpdateItemInput

	queryItems  []map[string]types.AttributeValue
	scanPages   [][]map[string]types.AttributeValue
	updateAttrs map[string]types.AttributeValue
	updateErr   error
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.put = in
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, _ *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return &dynamodb.GetItemOutput{}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.query = in
	return &dynamodb.QueryOutput{Items: f.queryItems}, nil
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	page := len(f.scans)
	f.scans = append(f.scans, in)
	out := &dynamodb.ScanOutput{}
	if page < len(f.scanPages) {
		out.Items = f.scanPages[page]
	}
	if page+1 < len(f.scanPages) {
		out.LastEvaluatedKey = map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: "cursor"}}
	}
	return out, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.update = in
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &dynamodb.UpdateItemOutput{Attributes: f.updateAttrs}, nil
}

func marshalItem(t *testing.T, m entities.Manifestacao) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(toManifestacaoItem(m))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return av
}

func TestManifestacaoDynamoRepository_CreateAndLookup(t *testing.T) {
	fake := &fakeDynamo{}
	repo := NewManifestacaoDynamoRepository(fake, "ouvidoria-test")
	seed := DemoSeed()[1]

	if _, err := repo.Create(context.Background(), seed); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if aws.ToString(fake.put.TableName) != "ouvidoria-test" {
		t.Fatalf("unexpected table %q", aws.ToString(fake.put.TableName))
	}
	if v, ok := fake.put.Item["email_lc"].(*types.AttributeValueMemberS); !ok || v.Value != "maria@email.com" {
		t.Fatalf("expected lowercased email attribute")
	}

	fake.queryItems = []map[string]types.AttributeValue{marshalItem(t, seed)}
	got, err := repo.GetByProtocolo(context.Background(), seed.Protocolo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if aws.ToString(fake.query.IndexName) != ManifestacoesProtocoloIndex {
		t.Fatalf("expected protocol index query")
	}
	if got.ID != seed.ID || !got.DataCriacao.Equal(seed.DataCriacao) || got.DataAtualizacao == nil {
		t.Fatalf("unexpected round trip: %+v", got)
	}
}

func TestManifestacaoDynamoRepository_ListPagesAndFilters(t *testing.T) {
	seed := DemoSeed()
	fake := &fakeDynamo{scanPages: [][]map[string]types.AttributeValue{
		{marshalItem(t, seed[0]), marshalItem(t, seed[1])},
		{marshalItem(t, seed[4])},
	}}
	repo := NewManifestacaoDynamoRepository(fake, "t")

	inicio := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	items, err := repo.List(context.Background(), entities.Filtros{Status: entities.StatusAberta, DataInicio: &inicio})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fake.scans) != 2 {
		t.Fatalf("expected 2 scan pages, got %d", len(fake.scans))
	}
	if !strings.Contains(aws.ToString(fake.scans[0].FilterExpression), "#status = :status") {
		t.Fatalf("expected status filter expression, got %q", aws.ToString(fake.scans[0].FilterExpression))
	}
	// the fake ignores the filter expression, so Match must drop seed[1] (EM_ANALISE)
	if len(items) != 2 || items[0].ID != "1" || items[1].ID != "5" {
		t.Fatalf("unexpected items: %+v", items)
	}
}

func TestManifestacaoDynamoRepository_UpdateStatus(t *testing.T) {
	at := time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)

	t.Run("missing record", func(t *testing.T) {
		fake := &fakeDynamo{updateErr: &types.ConditionalCheckFailedException{}}
		repo := NewManifestacaoDynamoRepository(fake, "t")
		got, err := repo.UpdateStatus(context.Background(), "x", entities.AtualizarStatus{Status: entities.StatusResolvida}, at)
		if err != nil || got.ID != "" {
			t.Fatalf("expected zero value, got %+v %v", got, err)
		}
	})

	t.Run("other error", func(t *testing.T) {
		fake := &fakeDynamo{updateErr: errors.New("boom")}
		repo := NewManifestacaoDynamoRepository(fake, "t")
		if _, err := repo.UpdateStatus(context.Background(), "x", entities.AtualizarStatus{Status: entities.StatusResolvida}, at); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("success", func(t *testing.T) {
		m := DemoSeed()[0]
		m.Status = entities.StatusResolvida
		m.DataAtualizacao = &at
		fake := &fakeDynamo{updateAttrs: marshalItem(t, m)}
		repo := NewManifestacaoDynamoRepository(fake, "t")

		got, err := repo.UpdateStatus(context.Background(), "1", entities.AtualizarStatus{Status: entities.StatusResolvida}, at)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.StatusResolvida || got.DataAtualizacao == nil || !got.DataAtualizacao.Equal(at) {
			t.Fatalf("unexpected record: %+v", got)
		}
		if !strings.Contains(aws.ToString(fake.update.UpdateExpression), "REMOVE #observacoes") {
			t.Fatalf("expected observacoes removal, got %q", aws.ToString(fake.update.UpdateExpression))
		}
	})
}
