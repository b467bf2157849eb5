package contracts

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// MaxUint256 is the conventional unlimited-approval amount.
var MaxUint256 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

// sel returns the 4-byte function selector for a signature.
func sel(signature string) []byte {
	hash := crypto.Keccak256([]byte(signature))
	return hash[:4]
}

var (
	selApprove   = sel("approve(address,uint256)")
	selAllowance = sel("allowance(address,address)")
	selBalanceOf = sel("balanceOf(address)")

	// staking pool: mint stakes the governance token, burn redeems shares
	selStakeMint = sel("mint(uint256)")
	selStakeBurn = sel("burn(address,uint256)")

	// masterchef-style farm
	selFarmDeposit  = sel("deposit(uint256,uint256)")
	selFarmWithdraw = sel("withdraw(uint256,uint256)")
	selFarmExit     = sel("emergencyWithdraw(uint256)")
)

// Cauldron cook action codes.
const (
	CookActionRepay         = 2
	CookActionBorrow        = 5
	CookActionAddCollateral = 10
)

func encodeCall(selector []byte, words ...[]byte) []byte {
	data := make([]byte, 0, 4+32*len(words))
	data = append(data, selector...)
	for _, word := range words {
		data = append(data, common.LeftPadBytes(word, 32)...)
	}
	return data
}

// EncodeApprove builds calldata for ERC20.approve(spender, amount).
func EncodeApprove(spender common.Address, amount *big.Int) []byte {
	return encodeCall(selApprove, spender.Bytes(), amount.Bytes())
}

// EncodeAllowance builds calldata for ERC20.allowance(owner, spender).
func EncodeAllowance(owner, spender common.Address) []byte {
	return encodeCall(selAllowance, owner.Bytes(), spender.Bytes())
}

// EncodeBalanceOf builds calldata for ERC20.balanceOf(account).
func EncodeBalanceOf(account common.Address) []byte {
	return encodeCall(selBalanceOf, account.Bytes())
}

// EncodeStake builds calldata for the staking pool's mint(amount).
func EncodeStake(amount *big.Int) []byte {
	return encodeCall(selStakeMint, amount.Bytes())
}

// EncodeUnstake builds calldata for the staking pool's burn(to, shares).
func EncodeUnstake(to common.Address, shares *big.Int) []byte {
	return encodeCall(selStakeBurn, to.Bytes(), shares.Bytes())
}

// EncodeFarmDeposit builds calldata for deposit(pid, amount). A zero amount
// harvests pending rewards without moving liquidity.
func EncodeFarmDeposit(poolID uint64, amount *big.Int) []byte {
	return encodeCall(selFarmDeposit, new(big.Int).SetUint64(poolID).Bytes(), amount.Bytes())
}

// EncodeFarmWithdraw builds calldata for withdraw(pid, amount).
func EncodeFarmWithdraw(poolID uint64, amount *big.Int) []byte {
	return encodeCall(selFarmWithdraw, new(big.Int).SetUint64(poolID).Bytes(), amount.Bytes())
}

// EncodeFarmExit builds calldata for emergencyWithdraw(pid), forfeiting
// pending rewards.
func EncodeFarmExit(poolID uint64) []byte {
	return encodeCall(selFarmExit, new(big.Int).SetUint64(poolID).Bytes())
}

// DecodeUint256 interprets a 32-byte eth_call return value.
func DecodeUint256(ret []byte) (*big.Int, error) {
	if len(ret) != 32 {
		return nil, fmt.Errorf("unexpected return length %d, want 32", len(ret))
	}
	return new(big.Int).SetBytes(ret), nil
}

const cauldronABIJSON = `[
	{"name":"cook","type":"function","stateMutability":"payable","inputs":[
		{"name":"actions","type":"uint8[]"},
		{"name":"values","type":"uint256[]"},
		{"name":"datas","type":"bytes[]"}
	],"outputs":[{"name":"value1","type":"uint256"},{"name":"value2","type":"uint256"}]}
]`

var cauldronABI = mustParseABI(cauldronABIJSON)

var (
	int256Type, _  = abi.NewType("int256", "", nil)
	addressType, _ = abi.NewType("address", "", nil)
	boolType, _    = abi.NewType("bool", "", nil)
)

func mustParseABI(raw string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic(fmt.Sprintf("parse cauldron abi: %v", err))
	}
	return parsed
}

// EncodeBorrowCook builds a cook batch that locks collateral and borrows the
// stablecoin to the account in one transaction.
func EncodeBorrowCook(account common.Address, collateralShare, borrowAmount *big.Int) ([]byte, error) {
	collateralData, err := abi.Arguments{
		{Type: int256Type}, {Type: addressType}, {Type: boolType},
	}.Pack(collateralShare, account, false)
	if err != nil {
		return nil, fmt.Errorf("pack collateral action: %w", err)
	}

	borrowData, err := abi.Arguments{
		{Type: int256Type}, {Type: addressType},
	}.Pack(borrowAmount, account)
	if err != nil {
		return nil, fmt.Errorf("pack borrow action: %w", err)
	}

	return cauldronABI.Pack("cook",
		[]uint8{CookActionAddCollateral, CookActionBorrow},
		[]*big.Int{big.NewInt(0), big.NewInt(0)},
		[][]byte{collateralData, borrowData},
	)
}

// EncodeRepayCook builds a cook batch repaying part of the account's debt.
func EncodeRepayCook(account common.Address, repayPart *big.Int) ([]byte, error) {
	repayData, err := abi.Arguments{
		{Type: int256Type}, {Type: addressType}, {Type: boolType},
	}.Pack(repayPart, account, false)
	if err != nil {
		return nil, fmt.Errorf("pack repay action: %w", err)
	}

	return cauldronABI.Pack("cook",
		[]uint8{CookActionRepay},
		[]*big.Int{big.NewInt(0)},
		[][]byte{repayData},
	)
}
