// SPDX-License-Identifier: MIT

package rational

// GCD exposes gcd to the black-box tests.
var GCD = gcd
