package usecase

import (
	"context"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// 初期在庫の記録者を決めるポリシー。
// 認証された呼び出し元が存在しないため、差し替え可能な部品として注入する
type ActingSellerResolver interface {
	Resolve(ctx context.Context) (model.Party, error)
}

// 最初に登録された活性なSELLERを使う
type firstActiveSellerResolver struct {
	parties repo.PartyRepository
}

func NewFirstActiveSellerResolver(parties repo.PartyRepository) ActingSellerResolver {
	return &firstActiveSellerResolver{parties: parties}
}

func (r *firstActiveSellerResolver) Resolve(ctx context.Context) (model.Party, error) {
	profile := model.ProfileSeller
	sellers, err := r.parties.ListByProfile(ctx, &profile)
	if err != nil {
		return model.Party{}, errDB()
	}
	if len(sellers) == 0 {
		return model.Party{}, errBusinessRule(
			"no sellers registered. create at least one seller first")
	}
	return sellers[0], nil
}
