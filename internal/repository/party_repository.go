package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("not found")

// 当事者（顧客・販売者・仕入先）の永続化だけを約束。
type PartyRepository interface {
	// 非活性も含めて引く（活性判定は呼び出し側）
	FindByID(ctx context.Context, id uuid.UUID) (model.Party, error)

	// 活性な当事者のみ。profileがnilなら全プロフィール
	ListByProfile(ctx context.Context, profile *model.PartyProfile) ([]model.Party, error)

	// 活性な当事者の中でdocumentが既に使われているか
	ExistsActiveByDocument(ctx context.Context, document string) (bool, error)

	Create(ctx context.Context, p model.Party) error
}
