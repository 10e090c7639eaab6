//go:build !assert_guarded

package mode

const assertionsStrict = true
