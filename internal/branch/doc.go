// Package branch models a named git branch and the workflow rules that
// classify it.
//
// A branch is protected when it is one of the two long-lived lines (the
// main line and the integration line), private when its name ends in
// "-local", a hotfix when its name starts with "hotfix-", and a feature
// branch whenever it is not protected. Protected branches are never deleted
// and private branches are never pushed.
package branch
