package snapshot

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"coc_clan_stats/internal/app"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
)

// LoadMembersFile reads a member list snapshot from disk
func LoadMembersFile(path string) ([]app.Member, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open members file: %w", err)
	}
	defer f.Close()

	members, err := LoadMembers(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return members, nil
}

// LoadWarFile reads a current war snapshot from disk
func LoadWarFile(path string) (*app.War, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open war file: %w", err)
	}
	defer f.Close()

	war, err := LoadWar(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return war, nil
}

// LoadMembers decodes a member list in either the API envelope form
// ({"items": [...]}) or as a bare array, then applies NormalizeMembers.
func LoadMembers(r io.Reader) ([]app.Member, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read members payload: %w", err)
	}

	var members []app.Member
	if isJSONArray(body) {
		if err := json.Unmarshal(body, &members); err != nil {
			return nil, fmt.Errorf("failed to decode member list: %w", err)
		}
	} else {
		var response app.MemberListResponse
		if err := json.Unmarshal(body, &response); err != nil {
			return nil, fmt.Errorf("failed to decode member response: %w", err)
		}
		members = response.Items
	}

	normalized := NormalizeMembers(members)

	log.Debug().
		Int("decoded", len(members)).
		Int("normalized", len(normalized)).
		Msg("Loaded member snapshot")

	return normalized, nil
}

// LoadWar decodes a current war payload and applies NormalizeWar
func LoadWar(r io.Reader) (*app.War, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read war payload: %w", err)
	}

	var war app.War
	if err := json.Unmarshal(body, &war); err != nil {
		return nil, fmt.Errorf("failed to decode war response: %w", err)
	}

	normalized := NormalizeWar(war)

	log.Debug().
		Str("state", string(normalized.State)).
		Int("team_size", normalized.TeamSize).
		Int("clan_members", len(normalized.Clan.Members)).
		Int("opponent_members", len(normalized.Opponent.Members)).
		Msg("Loaded war snapshot")

	return &normalized, nil
}

func isJSONArray(body []byte) bool {
	trimmed := bytes.TrimSpace(body)
	return len(trimmed) > 0 && trimmed[0] == '['
}
