package videoupscalerv1

import (
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/tx"
	proto "github.com/cosmos/gogoproto/proto"
)

// Type URLs of the module messages as they appear in transaction Anys.
const (
	TypeURLMsgCreateVideoUpscalerTask         = "/janction.videoUpscaler.v1.MsgCreateVideoUpscalerTask"
	TypeURLMsgCreateVideoUpscalerTaskResponse = "/janction.videoUpscaler.v1.MsgCreateVideoUpscalerTaskResponse"
	TypeURLMsgAddWorker                       = "/janction.videoUpscaler.v1.MsgAddWorker"
	TypeURLMsgSubscribeWorkerToTask           = "/janction.videoUpscaler.v1.MsgSubscribeWorkerToTask"
	TypeURLMsgProposeSolution                 = "/janction.videoUpscaler.v1.MsgProposeSolution"
	TypeURLMsgRevealSolution                  = "/janction.videoUpscaler.v1.MsgRevealSolution"
	TypeURLMsgSubmitValidation                = "/janction.videoUpscaler.v1.MsgSubmitValidation"
	TypeURLMsgSubmitSolution                  = "/janction.videoUpscaler.v1.MsgSubmitSolution"
)

// RegisteredType pairs a type URL with the message it decodes into.
type RegisteredType struct {
	TypeURL string
	Message proto.Message
}

// Types lists the message types a client needs to build and decode
// task creation transactions.
func Types() []RegisteredType {
	return []RegisteredType{
		{TypeURL: TypeURLMsgCreateVideoUpscalerTask, Message: &MsgCreateVideoUpscalerTask{}},
		{TypeURL: TypeURLMsgCreateVideoUpscalerTaskResponse, Message: &MsgCreateVideoUpscalerTaskResponse{}},
	}
}

// RegisterInterfaces registers every module Msg as an sdk.Msg and every Msg
// response as a tx.MsgResponse.
func RegisterInterfaces(registry codectypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgCreateVideoUpscalerTask{},
		&MsgAddWorker{},
		&MsgSubscribeWorkerToTask{},
		&MsgProposeSolution{},
		&MsgRevealSolution{},
		&MsgSubmitValidation{},
		&MsgSubmitSolution{},
	)
	registry.RegisterImplementations((*tx.MsgResponse)(nil),
		&MsgCreateVideoUpscalerTaskResponse{},
		&MsgAddWorkerResponse{},
		&MsgSubscribeWorkerToTaskResponse{},
		&MsgProposeSolutionResponse{},
		&MsgRevealSolutionResponse{},
		&MsgSubmitValidationResponse{},
		&MsgSubmitSolutionResponse{},
	)
}
