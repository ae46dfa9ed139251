package types

import (
	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
)

// CheckedAdd returns ErrArithmetic on overflow.
func CheckedAdd(a, b sdkmath.Int) (sdkmath.Int, error) {
	res, err := a.SafeAdd(b)
	if err != nil {
		return sdkmath.Int{}, errorsmod.Wrapf(ErrArithmetic, "%s + %s: %s", a, b, err)
	}
	return res, nil
}

// CheckedSub returns ErrArithmetic on overflow or when the result would be negative.
func CheckedSub(a, b sdkmath.Int) (sdkmath.Int, error) {
	res, err := a.SafeSub(b)
	if err != nil {
		return sdkmath.Int{}, errorsmod.Wrapf(ErrArithmetic, "%s - %s: %s", a, b, err)
	}
	if res.IsNegative() {
		return sdkmath.Int{}, errorsmod.Wrapf(ErrArithmetic, "%s - %s: underflow", a, b)
	}
	return res, nil
}

func CheckedMul(a, b sdkmath.Int) (sdkmath.Int, error) {
	res, err := a.SafeMul(b)
	if err != nil {
		return sdkmath.Int{}, errorsmod.Wrapf(ErrArithmetic, "%s * %s: %s", a, b, err)
	}
	return res, nil
}

func CheckedQuo(a, b sdkmath.Int) (sdkmath.Int, error) {
	if b.IsZero() {
		return sdkmath.Int{}, errorsmod.Wrapf(ErrArithmetic, "%s / 0: division by zero", a)
	}
	res, err := a.SafeQuo(b)
	if err != nil {
		return sdkmath.Int{}, errorsmod.Wrapf(ErrArithmetic, "%s / %s: %s", a, b, err)
	}
	return res, nil
}

// CheckedMulDiv computes floor(a * b / c), the product is not truncated before division.
func CheckedMulDiv(a, b, c sdkmath.Int) (sdkmath.Int, error) {
	product, err := CheckedMul(a, b)
	if err != nil {
		return sdkmath.Int{}, err
	}
	return CheckedQuo(product, c)
}

// SplitByWeight returns floor(amount * weight / 100) for each validator of the table.
func SplitByWeight(amount sdkmath.Int, validators []ValidatorWeight) ([]sdkmath.Int, error) {
	total := sdkmath.NewIntFromUint64(TotalWeight)
	amounts := make([]sdkmath.Int, len(validators))
	for i, v := range validators {
		part, err := CheckedMulDiv(amount, sdkmath.NewIntFromUint64(v.Weight), total)
		if err != nil {
			return nil, err
		}
		amounts[i] = part
	}
	return amounts, nil
}
