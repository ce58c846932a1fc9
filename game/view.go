package game

import (
	"github.com/lazharichir/blackjack/cards"
	"github.com/lazharichir/blackjack/domain"
)

// SeatView is one side of the table as the player sees it. The score and
// the hand state are omitted while a card of the hand is face down.
type SeatView struct {
	Cards        cards.HeldStack `json:"cards"`
	Score        *int            `json:"score,omitempty"`
	State        string          `json:"state,omitempty"`
	Result       string          `json:"result"`
	CanHit       bool            `json:"canHit"`
	CanDouble    bool            `json:"canDouble"`
	CanSplit     bool            `json:"canSplit"`
	IsBust       bool            `json:"isBust"`
	HasBlackjack bool            `json:"hasBlackjack"`
}

// View is a snapshot of a round safe to show the player
type View struct {
	GameID         string   `json:"gameId"`
	Player         SeatView `json:"player"`
	Dealer         SeatView `json:"dealer"`
	OfferInsurance bool     `json:"offerInsurance"`
	OfferSurrender bool     `json:"offerSurrender"`
	Bet            int      `json:"bet"`
	Cash           int      `json:"cash"`
	Bankrupt       bool     `json:"bankrupt"`
	IsOver         bool     `json:"isOver"`
}

// NewView snapshots a round. The dealer's hole card stays face down, and
// the dealer's flags hidden, until the round is over.
func NewView(game *domain.Game) View {
	player := game.Player()
	return View{
		GameID:         game.ID(),
		Player:         newSeatView(player.Hand(), false),
		Dealer:         newSeatView(game.Dealer().Hand(), !game.IsOver()),
		OfferInsurance: game.OfferInsurance(),
		OfferSurrender: game.OfferSurrender(),
		Bet:            game.Bet(),
		Cash:           player.Cash(),
		Bankrupt:       player.IsBankrupt(),
		IsOver:         game.IsOver(),
	}
}

func newSeatView(hand *domain.Hand, hideHoleCard bool) SeatView {
	held := cards.NewHeldStack(hand.Cards(), cards.FaceUp)
	view := SeatView{
		Cards:  held,
		Result: string(hand.Result()),
	}
	if hideHoleCard && len(held) > 0 {
		held[0].Hide()
		return view
	}

	score := hand.Score()
	view.Score = &score
	view.State = string(hand.State())
	view.CanHit = hand.CanHit()
	view.CanDouble = hand.CanDouble()
	view.CanSplit = hand.CanSplit()
	view.IsBust = hand.IsBust()
	view.HasBlackjack = hand.HasBlackjack()
	return view
}

// Labels returns the shorthand of every visible card, "??" for hidden ones
func (v SeatView) Labels() []string {
	return v.Cards.Labels()
}
