package solana

import (
	"crypto/ed25519"
	"encoding/base64"
	"encoding/json"
	"time"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/ybbus/jsonrpc"

	"github.com/starforge-games/starforge-sdk/pkg/rate"
	"github.com/starforge-games/starforge-sdk/pkg/retry"
	"github.com/starforge-games/starforge-sdk/pkg/retry/backoff"
)

const (
	// Both values can be read from the SysvarClock account, but neither
	// has ever changed on a public cluster.
	ticksPerSec  = 160
	ticksPerSlot = 64
	slotsPerSec  = ticksPerSec / ticksPerSlot

	// PollRate is the interval for polling signature statuses, roughly
	// twice per slot.
	PollRate = (time.Second / slotsPerSec) / 2

	// Polling runs at ~2x the slot rate and should cover ~32 slots.
	sigStatusPollLimit = 2 * 32

	// Reference: https://github.com/solana-labs/solana/blob/71e9958e061493d7545bd28d4ac7a85aaed6ffbb/client/src/rpc_custom_error.rs#L11
	rpcNodeUnhealthyCode = -32005

	invalidParamCode = -32602

	// The node caps getMultipleAccounts at 100 addresses per request.
	maxMultipleAccountsBatchSize = 100
)

type Commitment struct {
	Commitment string `json:"commitment"`
}

const (
	confirmationStatusProcessed = "processed"
	confirmationStatusConfirmed = "confirmed"
	confirmationStatusFinalized = "finalized"
)

var (
	CommitmentProcessed = Commitment{Commitment: confirmationStatusProcessed}
	CommitmentConfirmed = Commitment{Commitment: confirmationStatusConfirmed}
	CommitmentFinalized = Commitment{Commitment: confirmationStatusFinalized}
)

var (
	ErrNoAccountInfo     = errors.New("no account info")
	ErrSignatureNotFound = errors.New("signature not found")
	ErrNoBalance         = errors.New("no balance")
)

// Signature is a transaction signature.
type Signature [ed25519.SignatureSize]byte

// AccountInfo is the raw account state held by the node.
type AccountInfo struct {
	Data       []byte
	Owner      ed25519.PublicKey
	Lamports   uint64
	Executable bool
}

type SignatureStatus struct {
	Slot        uint64
	ErrorResult *TransactionError

	// Confirmations will be nil if the transaction has been rooted.
	Confirmations      *int
	ConfirmationStatus string
}

func (s SignatureStatus) Confirmed() bool {
	if s.Finalized() {
		return true
	}

	if s.ConfirmationStatus == confirmationStatusConfirmed {
		return true
	}

	return *s.Confirmations >= 1
}

func (s SignatureStatus) Finalized() bool {
	return s.Confirmations == nil || s.ConfirmationStatus == confirmationStatusFinalized
}

// Client is the read surface of the Solana JSON RPC API that the program
// client packages build on.
//
// Reference: https://docs.solana.com/apps/jsonrpc-api
type Client interface {
	GetAccountInfo(ed25519.PublicKey, Commitment) (AccountInfo, error)
	GetBalance(ed25519.PublicKey) (uint64, error)
	GetFilteredProgramAccounts(program ed25519.PublicKey, offset uint, filterValue []byte) ([]string, uint64, error)
	GetMinimumBalanceForRentExemption(size uint64) (lamports uint64, err error)
	GetMultipleAccounts([]ed25519.PublicKey, Commitment) ([]*AccountInfo, error)
	GetSignatureStatus(Signature, Commitment) (*SignatureStatus, error)
	GetSignatureStatuses([]Signature) ([]*SignatureStatus, error)
	GetSlot(Commitment) (uint64, error)
}

var (
	errRateLimited  = errors.New("rate limited")
	errServiceError = errors.New("service error")
)

// accountValue is the JSON shape shared by getAccountInfo and
// getMultipleAccounts responses.
type accountValue struct {
	Lamports   uint64   `json:"lamports"`
	Owner      string   `json:"owner"`
	Data       []string `json:"data"`
	Executable bool     `json:"executable"`
}

func (v *accountValue) decode() (*AccountInfo, error) {
	owner, err := base58.Decode(v.Owner)
	if err != nil {
		return nil, errors.Wrap(err, "invalid base58 encoded owner")
	}

	data, err := base64.StdEncoding.DecodeString(v.Data[0])
	if err != nil {
		return nil, errors.Wrap(err, "invalid base64 encoded data")
	}

	return &AccountInfo{
		Data:       data,
		Owner:      owner,
		Lamports:   v.Lamports,
		Executable: v.Executable,
	}, nil
}

// accountRequestConfig requests base64 account data at a given commitment.
type accountRequestConfig struct {
	Commitment Commitment `json:"commitment"`
	Encoding   string     `json:"encoding"`
}

type client struct {
	log     *logrus.Entry
	rpc     jsonrpc.RPCClient
	retrier retry.Retrier
	limiter rate.Limiter
}

// New returns a client using the specified endpoint.
func New(endpoint string) Client {
	return NewWithRPCOptions(endpoint, nil)
}

// NewWithRPCOptions returns a client configured with the specified RPC options.
func NewWithRPCOptions(endpoint string, opts *jsonrpc.RPCClientOpts) Client {
	return newClient(endpoint, opts, &rate.NoLimiter{})
}

// NewWithLimiter returns a client that rate limits calls locally, by RPC
// method, before they reach the endpoint.
func NewWithLimiter(endpoint string, limiter rate.Limiter) Client {
	return newClient(endpoint, nil, limiter)
}

func newClient(endpoint string, opts *jsonrpc.RPCClientOpts, limiter rate.Limiter) Client {
	return &client{
		log:     logrus.StandardLogger().WithField("type", "solana/client"),
		rpc:     jsonrpc.NewClientWithOpts(endpoint, opts),
		limiter: limiter,
		retrier: retry.NewRetrier(
			retry.RetriableErrors(errRateLimited, errServiceError),
			retry.Limit(3),
			retry.BackoffWithJitter(backoff.BinaryExponential(time.Second), 10*time.Second, 0.1),
		),
	}
}

// withRetry runs fn under the local rate limiter and the client's retry
// policy. fn is responsible for mapping RPC failures through handleRpcError
// so retriable conditions are recognized.
func (c *client) withRetry(method string, fn func() error) error {
	_, err := c.retrier.Retry(func() error {
		allowed, err := c.limiter.Allow(method)
		if err != nil {
			return errors.Wrap(err, "failed to check rate limit")
		}
		if !allowed {
			c.log.WithField("method", method).Debug("rate limited locally")
			return errRateLimited
		}

		return fn()
	})

	return err
}

func (c *client) call(out interface{}, method string, params ...interface{}) error {
	return c.withRetry(method, func() error {
		if err := c.rpc.CallFor(out, method, params...); err != nil {
			return c.handleRpcError(method, err)
		}

		return nil
	})
}

func (c *client) callBatch(method string, requests jsonrpc.RPCRequests) (map[int]jsonrpc.RPCResponse, error) {
	var responseByID map[int]jsonrpc.RPCResponse

	err := c.withRetry(method, func() error {
		responses, err := c.rpc.CallBatch(requests)
		if err != nil {
			return c.handleRpcError(method, err)
		}

		byID := make(map[int]jsonrpc.RPCResponse)
		for _, response := range responses {
			if response.Error != nil {
				return c.handleRpcError(method, response.Error)
			}

			byID[response.ID] = *response
		}

		responseByID = byID
		return nil
	})

	return responseByID, err
}

func (c *client) handleRpcError(method string, err error) error {
	rpcErr, ok := err.(*jsonrpc.RPCError)
	if !ok {
		return err
	}
	if rpcErr.Code == 429 {
		c.log.WithField("method", method).Error("rate limited")
		return errRateLimited
	}
	if rpcErr.Code >= 500 || rpcErr.Code == rpcNodeUnhealthyCode {
		return errServiceError
	}

	return err
}

func (c *client) GetMinimumBalanceForRentExemption(dataSize uint64) (lamports uint64, err error) {
	if err := c.call(&lamports, "getMinimumBalanceForRentExemption", dataSize); err != nil {
		return 0, errors.Wrap(err, "failed to call getMinimumBalanceForRentExemption")
	}

	return lamports, nil
}

func (c *client) GetSlot(commitment Commitment) (slot uint64, err error) {
	// The node rejects a bare commitment object here, so it rides in a
	// positional params array despite what JSON RPC v2.0 allows.
	if err := c.call(&slot, "getSlot", []interface{}{commitment}); err != nil {
		return 0, errors.Wrap(err, "failed to call getSlot")
	}

	return slot, nil
}

func (c *client) GetBalance(account ed25519.PublicKey) (uint64, error) {
	var resp struct {
		Value interface{} `json:"value"`
	}
	if err := c.call(&resp, "getBalance", base58.Encode(account), CommitmentProcessed); err != nil {
		if rpcErr, ok := err.(*jsonrpc.RPCError); ok && rpcErr.Code == invalidParamCode {
			return 0, ErrNoBalance
		}

		return 0, errors.Wrap(err, "failed to call getBalance")
	}

	if balance, ok := resp.Value.(float64); ok {
		return uint64(balance), nil
	}

	return 0, errors.Errorf("invalid value in response")
}

func (c *client) GetAccountInfo(account ed25519.PublicKey, commitment Commitment) (AccountInfo, error) {
	var resp struct {
		Value *accountValue `json:"value"`
	}

	config := accountRequestConfig{
		Commitment: commitment,
		Encoding:   "base64",
	}

	if err := c.call(&resp, "getAccountInfo", base58.Encode(account), config); err != nil {
		return AccountInfo{}, errors.Wrap(err, "failed to call getAccountInfo")
	}

	if resp.Value == nil {
		return AccountInfo{}, ErrNoAccountInfo
	}

	info, err := resp.Value.decode()
	if err != nil {
		return AccountInfo{}, err
	}

	return *info, nil
}

func (c *client) GetMultipleAccounts(accounts []ed25519.PublicKey, commitment Commitment) ([]*AccountInfo, error) {
	if len(accounts) == 0 {
		return nil, nil
	}

	type rpcResult struct {
		Value []*accountValue `json:"value"`
	}

	config := accountRequestConfig{
		Commitment: commitment,
		Encoding:   "base64",
	}

	var chunks [][]string
	for start := 0; start < len(accounts); start += maxMultipleAccountsBatchSize {
		end := start + maxMultipleAccountsBatchSize
		if end > len(accounts) {
			end = len(accounts)
		}

		chunk := make([]string, 0, end-start)
		for _, account := range accounts[start:end] {
			chunk = append(chunk, base58.Encode(account))
		}
		chunks = append(chunks, chunk)
	}

	results := make([]rpcResult, 0, len(chunks))
	if len(chunks) == 1 {
		var result rpcResult
		if err := c.call(&result, "getMultipleAccounts", chunks[0], config); err != nil {
			return nil, errors.Wrap(err, "failed to call getMultipleAccounts")
		}

		results = append(results, result)
	} else {
		requests := make(jsonrpc.RPCRequests, len(chunks))
		for i, chunk := range chunks {
			requests[i] = jsonrpc.NewRequest("getMultipleAccounts", chunk, config)
		}

		responsesByID, err := c.callBatch("getMultipleAccounts", requests)
		if err != nil {
			return nil, errors.Wrap(err, "failed to call getMultipleAccounts")
		}
		if len(responsesByID) != len(requests) {
			return nil, errors.New("received unexpected number of response objects")
		}

		for _, request := range requests {
			response, ok := responsesByID[request.ID]
			if !ok {
				return nil, errors.Errorf("missing getMultipleAccounts response %d", request.ID)
			}

			var result rpcResult
			if err := response.GetObject(&result); err != nil {
				return nil, errors.Wrap(err, "invalid getMultipleAccounts response")
			}

			results = append(results, result)
		}
	}

	infos := make([]*AccountInfo, 0, len(accounts))
	for i, result := range results {
		if len(result.Value) != len(chunks[i]) {
			return nil, errors.Errorf("expected %d values in response, got %d", len(chunks[i]), len(result.Value))
		}

		for _, value := range result.Value {
			if value == nil {
				infos = append(infos, nil)
				continue
			}

			info, err := value.decode()
			if err != nil {
				return nil, err
			}

			infos = append(infos, info)
		}
	}

	return infos, nil
}

func (c *client) GetSignatureStatus(sig Signature, commitment Commitment) (*SignatureStatus, error) {
	errConfirmationsNotReached := errors.New("confirmations not reached")

	var status *SignatureStatus
	_, err := retry.Retry(
		func() error {
			statuses, err := c.GetSignatureStatuses([]Signature{sig})
			if err != nil {
				return err
			}

			status = statuses[0]
			if status == nil {
				return ErrSignatureNotFound
			}

			// A rooted failure is terminal. The caller inspects ErrorResult.
			if status.ErrorResult != nil {
				return nil
			}

			switch commitment {
			case CommitmentProcessed:
				return nil
			case CommitmentConfirmed:
				if status.Confirmed() {
					return nil
				}
			case CommitmentFinalized:
				if status.Finalized() {
					return nil
				}
			}

			return errConfirmationsNotReached
		},
		retry.RetriableErrors(ErrSignatureNotFound, errConfirmationsNotReached),
		retry.Limit(sigStatusPollLimit),
		retry.Backoff(backoff.Constant(PollRate), PollRate),
	)

	return status, err
}

func (c *client) GetSignatureStatuses(sigs []Signature) ([]*SignatureStatus, error) {
	encoded := make([]string, len(sigs))
	for i := range sigs {
		encoded[i] = base58.Encode(sigs[i][:])
	}

	req := struct {
		SearchTransactionHistory bool `json:"searchTransactionHistory"`
	}{
		SearchTransactionHistory: true,
	}

	type signatureStatus struct {
		Slot               uint64          `json:"slot"`
		Confirmations      *int            `json:"confirmations"`
		ConfirmationStatus string          `json:"confirmationStatus"`
		Err                json.RawMessage `json:"err"`
	}

	var resp struct {
		Value []*signatureStatus `json:"value"`
	}
	if err := c.call(&resp, "getSignatureStatuses", encoded, req); err != nil {
		return nil, err
	}

	statuses := make([]*SignatureStatus, len(sigs))
	for i, v := range resp.Value {
		if v == nil {
			continue
		}

		status := &SignatureStatus{
			Slot:               v.Slot,
			Confirmations:      v.Confirmations,
			ConfirmationStatus: v.ConfirmationStatus,
		}

		if len(v.Err) > 0 {
			var raw interface{}
			if err := json.Unmarshal(v.Err, &raw); err != nil {
				return nil, errors.Wrap(err, "failed to parse transaction error")
			}

			errorResult, err := ParseTransactionError(raw)
			if err != nil {
				return nil, errors.Wrap(err, "failed to parse transaction error")
			}

			status.ErrorResult = errorResult
		}

		statuses[i] = status
	}

	return statuses, nil
}

func (c *client) GetFilteredProgramAccounts(program ed25519.PublicKey, offset uint, filterValue []byte) ([]string, uint64, error) {
	type memcmpFilter struct {
		Offset uint   `json:"offset"`
		Bytes  string `json:"bytes"`
	}

	type filter struct {
		Memcmp memcmpFilter `json:"memcmp"`
	}

	config := struct {
		Commitment  string   `json:"commitment"`
		Encoding    string   `json:"encoding"`
		Filters     []filter `json:"filters"`
		WithContext bool     `json:"withContext"`
	}{
		Commitment: confirmationStatusFinalized,
		Encoding:   "base64",
		Filters: []filter{
			{
				Memcmp: memcmpFilter{
					Offset: offset,
					Bytes:  base58.Encode(filterValue),
				},
			},
		},
		WithContext: true,
	}

	var resp struct {
		Context struct {
			Slot int64 `json:"slot"`
		} `json:"context"`
		Value []struct {
			PubKey string `json:"pubkey"`
		} `json:"value"`
	}
	if err := c.call(&resp, "getProgramAccounts", base58.Encode(program), config); err != nil {
		return nil, 0, err
	}

	keys := make([]string, 0, len(resp.Value))
	for _, result := range resp.Value {
		keys = append(keys, result.PubKey)
	}

	return keys, uint64(resp.Context.Slot), nil
}
