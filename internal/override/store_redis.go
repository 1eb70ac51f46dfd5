package override

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"caredocs/pkg/domain"
)

// RedisStore keeps overrides in Redis hashes, one hash per client per override
// kind. Overrides are small sparse records read on every status query, which
// suits a hash-per-client layout well.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func complianceHashKey(clientID domain.ClientID) string {
	return "caredocs:overrides:doc:" + clientID.String()
}

func folderHashKey(clientID domain.ClientID) string {
	return "caredocs:overrides:folder:" + clientID.String()
}

func (s *RedisStore) ComplianceOverrides(ctx context.Context, clientID domain.ClientID) (map[domain.DocumentType]ComplianceOverride, error) {
	fields, err := s.client.HGetAll(ctx, complianceHashKey(clientID)).Result()
	if err != nil {
		return nil, fmt.Errorf("list compliance overrides: %w", err)
	}

	out := make(map[domain.DocumentType]ComplianceOverride, len(fields))
	for field, raw := range fields {
		var ov ComplianceOverride
		if err := json.Unmarshal([]byte(raw), &ov); err != nil {
			return nil, fmt.Errorf("decode compliance override %q: %w", field, err)
		}
		out[domain.DocumentType(field)] = ov
	}
	return out, nil
}

func (s *RedisStore) UpsertComplianceOverride(ctx context.Context, ov ComplianceOverride) error {
	raw, err := json.Marshal(ov)
	if err != nil {
		return fmt.Errorf("encode compliance override: %w", err)
	}
	if err := s.client.HSet(ctx, complianceHashKey(ov.ClientID), string(ov.Type), raw).Err(); err != nil {
		return fmt.Errorf("upsert compliance override: %w", err)
	}
	return nil
}

func (s *RedisStore) FolderOverrides(ctx context.Context, clientID domain.ClientID) (map[domain.FolderID]FolderOverride, error) {
	fields, err := s.client.HGetAll(ctx, folderHashKey(clientID)).Result()
	if err != nil {
		return nil, fmt.Errorf("list folder overrides: %w", err)
	}

	out := make(map[domain.FolderID]FolderOverride, len(fields))
	for field, raw := range fields {
		var ov FolderOverride
		if err := json.Unmarshal([]byte(raw), &ov); err != nil {
			return nil, fmt.Errorf("decode folder override %q: %w", field, err)
		}
		out[domain.FolderID(field)] = ov
	}
	return out, nil
}

func (s *RedisStore) UpsertFolderOverride(ctx context.Context, ov FolderOverride) error {
	raw, err := json.Marshal(ov)
	if err != nil {
		return fmt.Errorf("encode folder override: %w", err)
	}
	if err := s.client.HSet(ctx, folderHashKey(ov.ClientID), string(ov.FolderID), raw).Err(); err != nil {
		return fmt.Errorf("upsert folder override: %w", err)
	}
	return nil
}
