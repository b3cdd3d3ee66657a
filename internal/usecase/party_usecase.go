package usecase

import (
	"context"
	"fmt"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/google/uuid"
)

type PartyUsecase struct {
	parties repo.PartyRepository
}

func NewPartyUsecase(parties repo.PartyRepository) *PartyUsecase {
	return &PartyUsecase{parties: parties}
}

type CreatePartyInput struct {
	Name     string  `json:"name"`
	Document string  `json:"document"`
	Profile  string  `json:"profile"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
}

type CreatePartyOutput struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

func (u *PartyUsecase) CreateParty(ctx context.Context, in CreatePartyInput) (CreatePartyOutput, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return CreatePartyOutput{}, errInvalidInput("name required")
	}

	document := strings.TrimSpace(in.Document)
	if document == "" {
		return CreatePartyOutput{}, errInvalidInput("document required")
	}

	profile, ok := model.ParsePartyProfile(in.Profile)
	if !ok {
		return CreatePartyOutput{}, errInvalidInput(
			"invalid profile. allowed values: SELLER, CUSTOMER, SUPPLIER")
	}

	exists, err := u.parties.ExistsActiveByDocument(ctx, document)
	if err != nil {
		return CreatePartyOutput{}, errDB()
	}
	if exists {
		return CreatePartyOutput{}, errBusinessRule(fmt.Sprintf(
			"a party with document '%s' already exists", document))
	}

	p := model.Party{
		ID:       uuid.New(),
		Name:     name,
		Document: document,
		Profile:  profile,
		Email:    in.Email,
		Phone:    in.Phone,
		IsActive: true,
	}
	if err := u.parties.Create(ctx, p); err != nil {
		return CreatePartyOutput{}, errDB()
	}

	return CreatePartyOutput{
		ID:      p.ID.String(),
		Message: fmt.Sprintf("Party '%s' created", name),
	}, nil
}

type PartyOutput struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Document string  `json:"document"`
	Profile  string  `json:"profile"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
}

func toPartyOutput(p model.Party) PartyOutput {
	return PartyOutput{
		ID:       p.ID.String(),
		Name:     p.Name,
		Document: p.Document,
		Profile:  string(p.Profile),
		Email:    p.Email,
		Phone:    p.Phone,
	}
}

func (u *PartyUsecase) GetParty(ctx context.Context, idStr string) (PartyOutput, error) {
	id, err := uuid.Parse(idStr)
	if err != nil {
		return PartyOutput{}, errInvalidInput("invalid party id")
	}

	p, err := u.parties.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return PartyOutput{}, errNotFound(fmt.Sprintf("party %s not found", id))
	}
	if err != nil {
		return PartyOutput{}, errDB()
	}
	if !p.IsActive {
		return PartyOutput{}, errNotFound(fmt.Sprintf("party %s not found", id))
	}

	return toPartyOutput(p), nil
}

func (u *PartyUsecase) ListParties(ctx context.Context, profileStr *string) ([]PartyOutput, error) {
	var profile *model.PartyProfile
	if profileStr != nil && *profileStr != "" {
		p, ok := model.ParsePartyProfile(*profileStr)
		if !ok {
			return nil, errInvalidInput(
				"invalid profile. allowed values: SELLER, CUSTOMER, SUPPLIER")
		}
		profile = &p
	}

	parties, err := u.parties.ListByProfile(ctx, profile)
	if err != nil {
		return nil, errDB()
	}

	outs := make([]PartyOutput, 0, len(parties))
	for _, p := range parties {
		outs = append(outs, toPartyOutput(p))
	}
	return outs, nil
}
