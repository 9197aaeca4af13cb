package repository

import (
	"os"
	"strings"
	"time"

	"ouvidoria/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// buildScanFilter translates the equality filters into a DynamoDB FilterExpression.
// Email is stored lowercased in email_lc so it can be compared exactly. Date bounds
// are checked with Filtros.Match after the scan.
func buildScanFilter(f entities.Filtros) (string, map[string]types.AttributeValue, map[string]string) {
	var parts []string
	values := map[string]types.AttributeValue{}
	names := map[string]string{}

	if f.Status != "" {
		parts = append(parts, "#status = :status")
		values[":status"] = &types.AttributeValueMemberS{Value: string(f.Status)}
		names["#status"] = "status"
	}
	if f.Tipo != "" {
		parts = append(parts, "#tipo = :tipo")
		values[":tipo"] = &types.AttributeValueMemberS{Value: string(f.Tipo)}
		names["#tipo"] = "tipo"
	}
	if email := strings.ToLower(strings.TrimSpace(f.Email)); email != "" {
		parts = append(parts, "#email_lc = :email_lc")
		values[":email_lc"] = &types.AttributeValueMemberS{Value: email}
		names["#email_lc"] = "email_lc"
	}
	if p := entities.NormalizeProtocolo(f.Protocolo); p != "" {
		parts = append(parts, "contains(#protocolo, :protocolo)")
		values[":protocolo"] = &types.AttributeValueMemberS{Value: p}
		names["#protocolo"] = "protocolo"
	}
	if len(parts) == 0 {
		return "", nil, nil
	}
	return strings.Join(parts, " AND "), values, names
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(v string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, v)
	return t
}
