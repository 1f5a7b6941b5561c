package base

import (
	"context"
	"encoding/hex"
	"fmt"
	"time"

	abcipb "cosmossdk.io/api/cosmos/base/abci/v1beta1"
	txtypes "cosmossdk.io/api/cosmos/tx/v1beta1"
	"github.com/cosmos/cosmos-sdk/client"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/crypto/keyring"
	sdk "github.com/cosmos/cosmos-sdk/types"
	signingtypes "github.com/cosmos/cosmos-sdk/types/tx/signing"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	gogoproto "github.com/cosmos/gogoproto/proto"
	"go.uber.org/zap"

	waittx "github.com/janction/sdk-go/internal/wait-tx"
	sdkcrypto "github.com/janction/sdk-go/pkg/crypto"
	"github.com/janction/sdk-go/types"
)

// TxOptions tune how a transaction is built.
type TxOptions struct {
	Memo string
	Fee  Fee
}

// Simulate runs a gas simulation for a provided tx bytes
func (c *Client) Simulate(ctx context.Context, txBytes []byte) (uint64, error) {
	ctx, cancel := c.WithCallTimeout(ctx)
	defer cancel()

	svc := txtypes.NewServiceClient(c.conn)
	resp, err := svc.Simulate(ctx, &txtypes.SimulateRequest{
		TxBytes: txBytes,
	})
	if err != nil {
		return 0, fmt.Errorf("simulate tx: %w", err)
	}
	if resp == nil || resp.GasInfo == nil {
		return 0, nil
	}
	return resp.GasInfo.GasUsed, nil
}

// Broadcast submits a signed transaction in sync mode and returns its hash.
// A CheckTx rejection is returned as a TxError.
func (c *Client) Broadcast(ctx context.Context, txBytes []byte) (string, error) {
	ctx, cancel := c.WithCallTimeout(ctx)
	defer cancel()

	svc := txtypes.NewServiceClient(c.conn)
	resp, err := svc.BroadcastTx(ctx, &txtypes.BroadcastTxRequest{
		TxBytes: txBytes,
		Mode:    txtypes.BroadcastMode_BROADCAST_MODE_SYNC,
	})
	if err != nil {
		return "", fmt.Errorf("broadcast tx: %w", err)
	}

	if resp == nil || resp.TxResponse == nil {
		return "", fmt.Errorf("empty tx response")
	}

	if resp.TxResponse.Code != 0 {
		return resp.TxResponse.GetTxhash(), TxError(resp.TxResponse.Code, resp.TxResponse.Codespace, resp.TxResponse.RawLog)
	}

	return resp.TxResponse.GetTxhash(), nil
}

// Signer returns the transaction signer bound to the client's key and chain.
func (c *Client) Signer() sdkcrypto.TxSigner {
	return sdkcrypto.TxSigner{
		Keyring:    c.keyring,
		KeyName:    c.keyName,
		ChainID:    c.config.ChainID,
		AccountHRP: c.config.AccountHRP,
	}
}

// SignerAddress returns the bech32 address of the signing key.
func (c *Client) SignerAddress() (string, error) {
	return c.Signer().Address()
}

// BuildAndSignTx builds a transaction carrying msgs, estimates its fee and
// signs it with the client's key.
func (c *Client) BuildAndSignTx(ctx context.Context, msgs []sdk.Msg, opts TxOptions) ([]byte, error) {
	if len(msgs) == 0 {
		return nil, fmt.Errorf("no messages to sign")
	}

	// 1) Tx builder
	builder := c.txConfig.NewTxBuilder()
	if err := builder.SetMsgs(msgs...); err != nil {
		return nil, fmt.Errorf("set msgs: %w", err)
	}
	if opts.Memo != "" {
		builder.SetMemo(opts.Memo)
	}

	// 2) Resolve account number/sequence BEFORE simulation
	rec, err := sdkcrypto.GetKey(c.keyring, c.keyName)
	if err != nil {
		return nil, err
	}
	accAddr, err := rec.GetAddress()
	if err != nil {
		return nil, fmt.Errorf("get address for %q: %w", c.keyName, err)
	}
	addr, err := sdk.Bech32ifyAddressBytes(c.config.AccountHRP, accAddr)
	if err != nil {
		return nil, fmt.Errorf("encode address for %q: %w", c.keyName, err)
	}

	authq := authtypes.NewQueryClient(c.conn)
	acctResp, err := authq.AccountInfo(ctx, &authtypes.QueryAccountInfoRequest{
		Address: addr,
	})
	if err != nil {
		return nil, fmt.Errorf("query account info: %w", err)
	}
	if acctResp == nil || acctResp.Info == nil {
		return nil, fmt.Errorf("empty account info response")
	}

	// 3) Gas and fee
	fee := opts.Fee
	if fee.IsAuto() {
		gasUsed, simErr := c.simulateUnsigned(ctx, builder, rec, acctResp.Info.Sequence)
		if simErr != nil {
			c.logger.Debug("simulation failed, using fallback gas", zap.Error(simErr))
		}
		gas := fee.gasFromSimulation(gasUsed, simErr)
		builder.SetGasLimit(gas)
		builder.SetFeeAmount(feeForGas(gas, c.config.GasPrice, c.config.FeeDenom))
	} else {
		builder.SetGasLimit(fee.GasLimit())
		builder.SetFeeAmount(fee.Amount())
	}

	// 4) Sign with real credentials, overwriting placeholder, and encode
	signedBytes, err := c.Signer().SignAndEncode(ctx, c.txConfig, builder, sdkcrypto.Account{
		Number:   acctResp.Info.AccountNumber,
		Sequence: acctResp.Info.Sequence,
	})
	if err != nil {
		return nil, fmt.Errorf("sign tx: %w", err)
	}

	return signedBytes, nil
}

// simulateUnsigned encodes the tx with an empty signature at the real
// sequence and asks the chain for its gas usage.
func (c *Client) simulateUnsigned(ctx context.Context, builder client.TxBuilder, rec *keyring.Record, sequence uint64) (uint64, error) {
	pk, err := rec.GetPubKey()
	if err != nil {
		return 0, fmt.Errorf("get pubkey for %q: %w", c.keyName, err)
	}
	placeholder := signingtypes.SignatureV2{
		PubKey: pk,
		Data: &signingtypes.SingleSignatureData{
			SignMode: signingtypes.SignMode(c.txConfig.SignModeHandler().DefaultMode()),
		},
		Sequence: sequence,
	}
	if err := builder.SetSignatures(placeholder); err != nil {
		return 0, fmt.Errorf("set placeholder signature: %w", err)
	}
	defer func() { _ = builder.SetSignatures() }()

	unsignedBytes, err := c.txConfig.TxEncoder()(builder.GetTx())
	if err != nil {
		return 0, fmt.Errorf("encode unsigned tx: %w", err)
	}
	return c.Simulate(ctx, unsignedBytes)
}

// SignAndBroadcast signs msgs, broadcasts them and waits for inclusion. A
// transaction included with a non-zero code returns its result together
// with the TxError.
func (c *Client) SignAndBroadcast(ctx context.Context, msgs []sdk.Msg, opts TxOptions) (*types.TxResult, error) {
	msgType := "none"
	if len(msgs) > 0 {
		msgType = sdk.MsgTypeURL(msgs[0])
	}

	txBytes, err := c.BuildAndSignTx(ctx, msgs, opts)
	if err != nil {
		c.metrics.observeTx(msgType, outcomeError)
		return nil, err
	}

	hash, err := c.Broadcast(ctx, txBytes)
	if err != nil {
		c.metrics.observeTx(msgType, outcomeRejected)
		return nil, err
	}
	c.logger.Debug("tx broadcast", zap.String("tx_hash", hash), zap.String("msg", msgType))

	resp, err := c.WaitForTxInclusion(ctx, hash)
	if err != nil {
		c.metrics.observeTx(msgType, outcomeError)
		return nil, fmt.Errorf("wait for tx %s: %w", hash, err)
	}

	result := TxResultFromResponse(resp.TxResponse)
	if err := TxError(result.Code, result.Codespace, result.RawLog); err != nil {
		c.metrics.observeTx(msgType, outcomeFailed)
		c.logger.Warn("tx failed", zap.String("tx_hash", hash), zap.Uint32("code", result.Code), zap.String("codespace", result.Codespace))
		return result, err
	}

	c.metrics.observeTx(msgType, outcomeCommitted)
	c.logger.Info("tx committed", zap.String("tx_hash", hash), zap.Int64("height", result.Height))
	return result, nil
}

// GetTx fetches a transaction by hash via the tx service.
func (c *Client) GetTx(ctx context.Context, hash string) (*txtypes.GetTxResponse, error) {
	ctx, cancel := c.WithCallTimeout(ctx)
	defer cancel()

	svc := txtypes.NewServiceClient(c.conn)
	resp, err := svc.GetTx(ctx, &txtypes.GetTxRequest{Hash: hash})
	if err != nil {
		return nil, fmt.Errorf("get tx: %w", err)
	}
	if resp == nil {
		return nil, fmt.Errorf("empty get tx response")
	}
	return resp, nil
}

// WaitForTxInclusion waits until the transaction is included in a block,
// through the websocket subscriber when an RPC endpoint is configured and the
// gRPC poller otherwise. Once the waiter reports inclusion the full tx is
// fetched, treating codes.NotFound as an indexer that has not caught up yet.
func (c *Client) WaitForTxInclusion(ctx context.Context, txHash string) (*txtypes.GetTxResponse, error) {
	w, err := waittx.New(c.config.WaitTx, c.config.RPCEndpoint, txtypes.NewServiceClient(c.conn), c.logger.Named("wait-tx"))
	if err != nil {
		return nil, err
	}
	if _, err := w.Wait(ctx, txHash, 0); err != nil {
		return nil, err
	}

	interval := c.config.WaitTx.PollInterval
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}
	for {
		resp, err := c.GetTx(ctx, txHash)
		if err == nil && resp.TxResponse != nil {
			return resp, nil
		}
		if err != nil && !IsNotFound(err) {
			return nil, err
		}

		t := time.NewTimer(interval)
		select {
		case <-ctx.Done():
			t.Stop()
			return nil, ctx.Err()
		case <-t.C:
		}
	}
}

// TxResultFromResponse flattens a tx response into a types.TxResult.
func TxResultFromResponse(resp *abcipb.TxResponse) *types.TxResult {
	if resp == nil {
		return &types.TxResult{}
	}
	out := &types.TxResult{
		TxHash:    resp.Txhash,
		Height:    resp.Height,
		Code:      resp.Code,
		Codespace: resp.Codespace,
		RawLog:    resp.RawLog,
		GasWanted: resp.GasWanted,
		GasUsed:   resp.GasUsed,
		Data:      resp.Data,
	}
	for _, ev := range resp.Events {
		if ev == nil {
			continue
		}
		e := types.Event{Type: ev.GetType_(), Attributes: make(map[string]string, len(ev.GetAttributes()))}
		for _, attr := range ev.GetAttributes() {
			if attr == nil {
				continue
			}
			if _, seen := e.Attributes[attr.GetKey()]; !seen {
				e.Attributes[attr.GetKey()] = attr.GetValue()
			}
		}
		out.Events = append(out.Events, e)
	}
	return out
}

// ExtractEventAttribute extracts an attribute value from transaction events.
// It searches through TxResponse.Events for the first event matching eventType,
// then returns the value of the first attribute matching attrKey.
func (c *Client) ExtractEventAttribute(tx *txtypes.GetTxResponse, eventType, attrKey string) (string, error) {
	if tx == nil || tx.TxResponse == nil {
		return "", fmt.Errorf("nil tx or tx response")
	}
	if len(tx.TxResponse.GetEvents()) == 0 {
		return "", fmt.Errorf("no events in tx response")
	}
	if v, ok := TxResultFromResponse(tx.TxResponse).Attribute(eventType, attrKey); ok {
		return v, nil
	}
	return "", fmt.Errorf("attribute %q not found in event type %q", attrKey, eventType)
}

// MsgResponses decodes the message responses carried in the result data.
func MsgResponses(result *types.TxResult) ([]*codectypes.Any, error) {
	if result == nil || result.Data == "" {
		return nil, nil
	}
	bz, err := hex.DecodeString(result.Data)
	if err != nil {
		return nil, fmt.Errorf("decode tx data: %w", err)
	}
	var data sdk.TxMsgData
	if err := gogoproto.Unmarshal(bz, &data); err != nil {
		return nil, fmt.Errorf("unmarshal tx msg data: %w", err)
	}
	return data.MsgResponses, nil
}

// UnpackMsgResponse decodes the first message response of typeURL into dst.
// It reports false when the result carries no such response.
func UnpackMsgResponse(result *types.TxResult, typeURL string, dst gogoproto.Message) (bool, error) {
	responses, err := MsgResponses(result)
	if err != nil {
		return false, err
	}
	for _, resp := range responses {
		if resp == nil || resp.TypeUrl != typeURL {
			continue
		}
		if err := gogoproto.Unmarshal(resp.Value, dst); err != nil {
			return false, fmt.Errorf("unmarshal %s: %w", typeURL, err)
		}
		return true, nil
	}
	return false, nil
}
