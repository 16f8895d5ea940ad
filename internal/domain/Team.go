package domain

import (
	"fmt"
	"strings"
)

// Team identifica um time de vendas
type Team string

const (
	TeamA        Team = "A"
	TeamB        Team = "B"
	TeamC        Team = "C"
	TeamC1       Team = "C1"
	TeamFollowUp Team = "Follow-up"
)

// Teams retorna os times na ordem fixa do relatório
var Teams = []Team{TeamA, TeamB, TeamC, TeamC1, TeamFollowUp}

// Grupos usados nos subtotais do relatório
var (
	GroupAB  = []Team{TeamA, TeamB}
	GroupCC1 = []Team{TeamC, TeamC1}
)

// teamAliases mapeia os rótulos aceitos na entrada para o time canônico
var teamAliases = map[string]Team{
	"a":              TeamA,
	"team a":         TeamA,
	"b":              TeamB,
	"team b":         TeamB,
	"c":              TeamC,
	"team c":         TeamC,
	"c1":             TeamC1,
	"team c1":        TeamC1,
	"follow-up":      TeamFollowUp,
	"followup":       TeamFollowUp,
	"follow up":      TeamFollowUp,
	"team follow-up": TeamFollowUp,
	"فولو أب":        TeamFollowUp,
	"فولو اب":        TeamFollowUp,
}

// ParseTeam converte um rótulo recebido do cliente em um Team válido
func ParseTeam(label string) (Team, error) {
	key := strings.ToLower(strings.TrimSpace(label))
	if team, ok := teamAliases[key]; ok {
		return team, nil
	}

	return "", fmt.Errorf("time desconhecido: %q", label)
}

// HasSpend indica se o time tem gasto de anúncios associado
func (t Team) HasSpend() bool {
	return t != TeamFollowUp
}

// DisplayName é o rótulo usado no relatório
func (t Team) DisplayName() string {
	if t == TeamFollowUp {
		return "فولو أب"
	}
	return string(t)
}

func (t Team) Valid() bool {
	for _, team := range Teams {
		if team == t {
			return true
		}
	}
	return false
}
