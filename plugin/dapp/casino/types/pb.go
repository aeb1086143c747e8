// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/33cn/vegas/types"
	proto "github.com/golang/protobuf/proto"
)

//CasinoAction casino 交易
type CasinoAction struct {
	Ty          int32       `protobuf:"varint,1,opt,name=ty,proto3" json:"ty,omitempty"`
	Instantiate *CasinoInit `protobuf:"bytes,2,opt,name=instantiate,proto3" json:"instantiate,omitempty"`
	Outcome     uint32      `protobuf:"varint,3,opt,name=outcome,proto3" json:"outcome,omitempty"`
	Value       string      `protobuf:"bytes,4,opt,name=value,proto3" json:"value,omitempty"`
	Number      uint64      `protobuf:"varint,5,opt,name=number,proto3" json:"number,omitempty"`
}

func (m *CasinoAction) Reset()         { *m = CasinoAction{} }
func (m *CasinoAction) String() string { return proto.CompactTextString(m) }
func (*CasinoAction) ProtoMessage()    {}

//CasinoInit 初始化参数
type CasinoInit struct {
	NativeDenom     string `protobuf:"bytes,1,opt,name=nativeDenom,proto3" json:"nativeDenom,omitempty"`
	Advantage       string `protobuf:"bytes,2,opt,name=advantage,proto3" json:"advantage,omitempty"`
	WinTax          string `protobuf:"bytes,3,opt,name=winTax,proto3" json:"winTax,omitempty"`
	MaxBets         uint64 `protobuf:"varint,4,opt,name=maxBets,proto3" json:"maxBets,omitempty"`
	MaxBettingRatio uint64 `protobuf:"varint,5,opt,name=maxBettingRatio,proto3" json:"maxBettingRatio,omitempty"`
	MaxCashflow     uint64 `protobuf:"varint,6,opt,name=maxCashflow,proto3" json:"maxCashflow,omitempty"`
	RoundDuration   int64  `protobuf:"varint,7,opt,name=roundDuration,proto3" json:"roundDuration,omitempty"`
	Oracle          string `protobuf:"bytes,8,opt,name=oracle,proto3" json:"oracle,omitempty"`
	Reserve         string `protobuf:"bytes,9,opt,name=reserve,proto3" json:"reserve,omitempty"`
	Gov             string `protobuf:"bytes,10,opt,name=gov,proto3" json:"gov,omitempty"`
}

func (m *CasinoInit) Reset()         { *m = CasinoInit{} }
func (m *CasinoInit) String() string { return proto.CompactTextString(m) }
func (*CasinoInit) ProtoMessage()    {}

//CasinoConfig 游戏配置, 系数表在修改 advantage 时整体重算
type CasinoConfig struct {
	Owner           string   `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner,omitempty"`
	NativeDenom     string   `protobuf:"bytes,2,opt,name=nativeDenom,proto3" json:"nativeDenom,omitempty"`
	Advantage       string   `protobuf:"bytes,3,opt,name=advantage,proto3" json:"advantage,omitempty"`
	WinCoefficients []string `protobuf:"bytes,4,rep,name=winCoefficients,proto3" json:"winCoefficients,omitempty"`
	WinTax          string   `protobuf:"bytes,5,opt,name=winTax,proto3" json:"winTax,omitempty"`
	WinMultiplier   string   `protobuf:"bytes,6,opt,name=winMultiplier,proto3" json:"winMultiplier,omitempty"`
	MaxBets         uint64   `protobuf:"varint,7,opt,name=maxBets,proto3" json:"maxBets,omitempty"`
	MaxBettingRatio uint64   `protobuf:"varint,8,opt,name=maxBettingRatio,proto3" json:"maxBettingRatio,omitempty"`
	MaxCashflow     uint64   `protobuf:"varint,9,opt,name=maxCashflow,proto3" json:"maxCashflow,omitempty"`
	Oracle          string   `protobuf:"bytes,10,opt,name=oracle,proto3" json:"oracle,omitempty"`
	Reserve         string   `protobuf:"bytes,11,opt,name=reserve,proto3" json:"reserve,omitempty"`
	Gov             string   `protobuf:"bytes,12,opt,name=gov,proto3" json:"gov,omitempty"`
}

func (m *CasinoConfig) Reset()         { *m = CasinoConfig{} }
func (m *CasinoConfig) String() string { return proto.CompactTextString(m) }
func (*CasinoConfig) ProtoMessage()    {}

//RoundTimer 轮次计时
type RoundTimer struct {
	RoundDuration     int64  `protobuf:"varint,1,opt,name=roundDuration,proto3" json:"roundDuration,omitempty"`
	CurrentRoundStart int64  `protobuf:"varint,2,opt,name=currentRoundStart,proto3" json:"currentRoundStart,omitempty"`
	CurrentRound      uint64 `protobuf:"varint,3,opt,name=currentRound,proto3" json:"currentRound,omitempty"`
	Stopped           bool   `protobuf:"varint,4,opt,name=stopped,proto3" json:"stopped,omitempty"`
	DrandRound        uint64 `protobuf:"varint,5,opt,name=drandRound,proto3" json:"drandRound,omitempty"`
}

func (m *RoundTimer) Reset()         { *m = RoundTimer{} }
func (m *RoundTimer) String() string { return proto.CompactTextString(m) }
func (*RoundTimer) ProtoMessage()    {}

//Bet 一次下注
type Bet struct {
	Outcome uint32 `protobuf:"varint,1,opt,name=outcome,proto3" json:"outcome,omitempty"`
	Amount  uint64 `protobuf:"varint,2,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *Bet) Reset()         { *m = Bet{} }
func (m *Bet) String() string { return proto.CompactTextString(m) }
func (*Bet) ProtoMessage()    {}

//PlayerRoundBets 玩家在某一轮的下注, 按下注顺序
type PlayerRoundBets struct {
	Round  uint64 `protobuf:"varint,1,opt,name=round,proto3" json:"round,omitempty"`
	Player string `protobuf:"bytes,2,opt,name=player,proto3" json:"player,omitempty"`
	Bets   []*Bet `protobuf:"bytes,3,rep,name=bets,proto3" json:"bets,omitempty"`
}

func (m *PlayerRoundBets) Reset()         { *m = PlayerRoundBets{} }
func (m *PlayerRoundBets) String() string { return proto.CompactTextString(m) }
func (*PlayerRoundBets) ProtoMessage()    {}

//RoundBets 某一轮的玩家(升序)和下注总额
type RoundBets struct {
	Players []string `protobuf:"bytes,1,rep,name=players,proto3" json:"players,omitempty"`
	Total   uint64   `protobuf:"varint,2,opt,name=total,proto3" json:"total,omitempty"`
}

func (m *RoundBets) Reset()         { *m = RoundBets{} }
func (m *RoundBets) String() string { return proto.CompactTextString(m) }
func (*RoundBets) ProtoMessage()    {}

//PlayerRounds 玩家下过注的轮次, 升序
type PlayerRounds struct {
	Rounds []uint64 `protobuf:"varint,1,rep,name=rounds,proto3" json:"rounds,omitempty"`
}

func (m *PlayerRounds) Reset()         { *m = PlayerRounds{} }
func (m *PlayerRounds) String() string { return proto.CompactTextString(m) }
func (*PlayerRounds) ProtoMessage()    {}

//Outcome 某一轮的结果
type Outcome struct {
	Round      uint64 `protobuf:"varint,1,opt,name=round,proto3" json:"round,omitempty"`
	Outcome    uint32 `protobuf:"varint,2,opt,name=outcome,proto3" json:"outcome,omitempty"`
	DrandRound uint64 `protobuf:"varint,3,opt,name=drandRound,proto3" json:"drandRound,omitempty"`
}

func (m *Outcome) Reset()         { *m = Outcome{} }
func (m *Outcome) String() string { return proto.CompactTextString(m) }
func (*Outcome) ProtoMessage()    {}

//Reward 玩家奖励
type Reward struct {
	Player string `protobuf:"bytes,1,opt,name=player,proto3" json:"player,omitempty"`
	Amount uint64 `protobuf:"varint,2,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *Reward) Reset()         { *m = Reward{} }
func (m *Reward) String() string { return proto.CompactTextString(m) }
func (*Reward) ProtoMessage()    {}

//ReceiptBet 下注日志
type ReceiptBet struct {
	Round   uint64 `protobuf:"varint,1,opt,name=round,proto3" json:"round,omitempty"`
	Player  string `protobuf:"bytes,2,opt,name=player,proto3" json:"player,omitempty"`
	Outcome uint32 `protobuf:"varint,3,opt,name=outcome,proto3" json:"outcome,omitempty"`
	Amount  uint64 `protobuf:"varint,4,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *ReceiptBet) Reset()         { *m = ReceiptBet{} }
func (m *ReceiptBet) String() string { return proto.CompactTextString(m) }
func (*ReceiptBet) ProtoMessage()    {}

//ReceiptSettle 结算日志
type ReceiptSettle struct {
	Round        uint64    `protobuf:"varint,1,opt,name=round,proto3" json:"round,omitempty"`
	Outcome      uint32    `protobuf:"varint,2,opt,name=outcome,proto3" json:"outcome,omitempty"`
	DrandRound   uint64    `protobuf:"varint,3,opt,name=drandRound,proto3" json:"drandRound,omitempty"`
	Winners      []*Reward `protobuf:"bytes,4,rep,name=winners,proto3" json:"winners,omitempty"`
	Payout       uint64    `protobuf:"varint,5,opt,name=payout,proto3" json:"payout,omitempty"`
	TotalRewards uint64    `protobuf:"varint,6,opt,name=totalRewards,proto3" json:"totalRewards,omitempty"`
}

func (m *ReceiptSettle) Reset()         { *m = ReceiptSettle{} }
func (m *ReceiptSettle) String() string { return proto.CompactTextString(m) }
func (*ReceiptSettle) ProtoMessage()    {}

//ReqPlayer 按玩家查询
type ReqPlayer struct {
	Player string `protobuf:"bytes,1,opt,name=player,proto3" json:"player,omitempty"`
}

func (m *ReqPlayer) Reset()         { *m = ReqPlayer{} }
func (m *ReqPlayer) String() string { return proto.CompactTextString(m) }
func (*ReqPlayer) ProtoMessage()    {}

//ReqPlayerRound 按玩家和轮次查询
type ReqPlayerRound struct {
	Player string `protobuf:"bytes,1,opt,name=player,proto3" json:"player,omitempty"`
	Round  uint64 `protobuf:"varint,2,opt,name=round,proto3" json:"round,omitempty"`
}

func (m *ReqPlayerRound) Reset()         { *m = ReqPlayerRound{} }
func (m *ReqPlayerRound) String() string { return proto.CompactTextString(m) }
func (*ReqPlayerRound) ProtoMessage()    {}

//BetKey AllBets 分页位置
type BetKey struct {
	Round  uint64 `protobuf:"varint,1,opt,name=round,proto3" json:"round,omitempty"`
	Player string `protobuf:"bytes,2,opt,name=player,proto3" json:"player,omitempty"`
}

func (m *BetKey) Reset()         { *m = BetKey{} }
func (m *BetKey) String() string { return proto.CompactTextString(m) }
func (*BetKey) ProtoMessage()    {}

//ReqAllBets 所有下注, 按 (round, player) 降序, StartAfter 不包含
type ReqAllBets struct {
	StartAfter *BetKey `protobuf:"bytes,1,opt,name=startAfter,proto3" json:"startAfter,omitempty"`
	Limit      int32   `protobuf:"varint,2,opt,name=limit,proto3" json:"limit,omitempty"`
}

func (m *ReqAllBets) Reset()         { *m = ReqAllBets{} }
func (m *ReqAllBets) String() string { return proto.CompactTextString(m) }
func (*ReqAllBets) ProtoMessage()    {}

//ReqOutcomes 结果历史, 按轮次升序, StartAfter 不包含
type ReqOutcomes struct {
	StartAfter *types.Uint64 `protobuf:"bytes,1,opt,name=startAfter,proto3" json:"startAfter,omitempty"`
	Limit      int32         `protobuf:"varint,2,opt,name=limit,proto3" json:"limit,omitempty"`
}

func (m *ReqOutcomes) Reset()         { *m = ReqOutcomes{} }
func (m *ReqOutcomes) String() string { return proto.CompactTextString(m) }
func (*ReqOutcomes) ProtoMessage()    {}

//ReplyPlayerBets 下注列表
type ReplyPlayerBets struct {
	Items []*PlayerRoundBets `protobuf:"bytes,1,rep,name=items,proto3" json:"items,omitempty"`
}

func (m *ReplyPlayerBets) Reset()         { *m = ReplyPlayerBets{} }
func (m *ReplyPlayerBets) String() string { return proto.CompactTextString(m) }
func (*ReplyPlayerBets) ProtoMessage()    {}

//OutcomeHistory 结果历史
type OutcomeHistory struct {
	Outcomes []*Outcome `protobuf:"bytes,1,rep,name=outcomes,proto3" json:"outcomes,omitempty"`
}

func (m *OutcomeHistory) Reset()         { *m = OutcomeHistory{} }
func (m *OutcomeHistory) String() string { return proto.CompactTextString(m) }
func (*OutcomeHistory) ProtoMessage()    {}

//WinCoefficients 赔率系数
type WinCoefficients struct {
	Coefficients []string `protobuf:"bytes,1,rep,name=coefficients,proto3" json:"coefficients,omitempty"`
}

func (m *WinCoefficients) Reset()         { *m = WinCoefficients{} }
func (m *WinCoefficients) String() string { return proto.CompactTextString(m) }
func (*WinCoefficients) ProtoMessage()    {}

//CurrentRound 当前轮次
type CurrentRound struct {
	Round      uint64 `protobuf:"varint,1,opt,name=round,proto3" json:"round,omitempty"`
	Status     int32  `protobuf:"varint,2,opt,name=status,proto3" json:"status,omitempty"`
	StatusName string `protobuf:"bytes,3,opt,name=statusName,proto3" json:"statusName,omitempty"`
	DrandRound uint64 `protobuf:"varint,4,opt,name=drandRound,proto3" json:"drandRound,omitempty"`
}

func (m *CurrentRound) Reset()         { *m = CurrentRound{} }
func (m *CurrentRound) String() string { return proto.CompactTextString(m) }
func (*CurrentRound) ProtoMessage()    {}

//ReplyConfig 配置和计时
type ReplyConfig struct {
	Config *CasinoConfig `protobuf:"bytes,1,opt,name=config,proto3" json:"config,omitempty"`
	Timer  *RoundTimer   `protobuf:"bytes,2,opt,name=timer,proto3" json:"timer,omitempty"`
}

func (m *ReplyConfig) Reset()         { *m = ReplyConfig{} }
func (m *ReplyConfig) String() string { return proto.CompactTextString(m) }
func (*ReplyConfig) ProtoMessage()    {}

//GetBets bets
func (m *PlayerRoundBets) GetBets() []*Bet {
	if m != nil {
		return m.Bets
	}
	return nil
}

//GetStartAfter start
func (m *ReqAllBets) GetStartAfter() *BetKey {
	if m != nil {
		return m.StartAfter
	}
	return nil
}
