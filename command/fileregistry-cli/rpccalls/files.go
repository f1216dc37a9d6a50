// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/fileregistryd/account"
	"github.com/bitmark-inc/fileregistryd/digest"
	"github.com/bitmark-inc/fileregistryd/instruction"
	"github.com/bitmark-inc/fileregistryd/ledger"
	"github.com/bitmark-inc/fileregistryd/rpc/files"
)

// UploadData - data for an upload request
type UploadData struct {
	Owner          *account.PrivateKey
	FileHash       digest.Digest
	ContentPointer string
	Metadata       string
	FileSize       uint64
	ContentType    string
	Description    string
}

// Upload - register a file fingerprint
func (client *Client) Upload(uploadConfig *UploadData) (*ledger.Result, error) {

	nonce, err := makeNonce()
	if nil != err {
		return nil, err
	}

	inst := &instruction.Upload{
		Owner:          uploadConfig.Owner.Account(),
		FileHash:       uploadConfig.FileHash,
		ContentPointer: uploadConfig.ContentPointer,
		Metadata:       uploadConfig.Metadata,
		FileSize:       uploadConfig.FileSize,
		ContentType:    uploadConfig.ContentType,
		Description:    uploadConfig.Description,
		Nonce:          nonce,
	}

	return client.execute("Files.Upload", "Upload", inst, uploadConfig.Owner)
}

// Verify - check a fingerprint against a registered file
func (client *Client) Verify(verifier *account.PrivateKey, file digest.Digest, fileHash digest.Digest) (*ledger.Result, error) {

	nonce, err := makeNonce()
	if nil != err {
		return nil, err
	}

	inst := &instruction.Verify{
		Verifier: verifier.Account(),
		File:     file,
		FileHash: fileHash,
		Nonce:    nonce,
	}

	return client.execute("Files.Verify", "Verify", inst, verifier)
}

// UpdatePublicity - toggle public verification of a file
func (client *Client) UpdatePublicity(owner *account.PrivateKey, file digest.Digest, isPublic bool) (*ledger.Result, error) {

	nonce, err := makeNonce()
	if nil != err {
		return nil, err
	}

	inst := &instruction.UpdatePublicity{
		Owner:    owner.Account(),
		File:     file,
		IsPublic: isPublic,
		Nonce:    nonce,
	}

	return client.execute("Files.UpdatePublicity", "Publicity", inst, owner)
}

// Delete - retire a file
func (client *Client) Delete(owner *account.PrivateKey, file digest.Digest) (*ledger.Result, error) {

	nonce, err := makeNonce()
	if nil != err {
		return nil, err
	}

	inst := &instruction.Delete{
		Owner: owner.Account(),
		File:  file,
		Nonce: nonce,
	}

	return client.execute("Files.Delete", "Delete", inst, owner)
}

// GetFile - fetch a file record
func (client *Client) GetFile(address digest.Digest) (*files.GetReply, error) {

	arguments := &files.GetArguments{
		Address: address,
	}

	client.trace("File Request", arguments)

	var reply files.GetReply
	err := client.client.Call("Files.Get", arguments, &reply)
	if nil != err {
		return nil, err
	}

	client.trace("File Reply", reply)

	return &reply, nil
}

// Status - public verification status of a file
func (client *Client) Status(address digest.Digest) (*ledger.VerificationStatus, error) {

	arguments := &files.GetArguments{
		Address: address,
	}

	client.trace("Status Request", arguments)

	var reply ledger.VerificationStatus
	err := client.client.Call("Files.Status", arguments, &reply)
	if nil != err {
		return nil, err
	}

	client.trace("Status Reply", reply)

	return &reply, nil
}

// ListFiles - files of an owner in address order
func (client *Client) ListFiles(owner *account.Account, start *digest.Digest, count int) (*files.ListReply, error) {

	arguments := &files.ListArguments{
		Owner: owner,
		Start: start,
		Count: count,
	}

	client.trace("List Request", arguments)

	var reply files.ListReply
	err := client.client.Call("Files.List", arguments, &reply)
	if nil != err {
		return nil, err
	}

	client.trace("List Reply", reply)

	return &reply, nil
}

// sign an instruction and send it to a service method
func (client *Client) execute(method string, title string, inst instruction.Instruction, signer *account.PrivateKey) (*ledger.Result, error) {

	if _, err := instruction.Sign(inst, signer); nil != err {
		return nil, err
	}

	client.trace(title+" Request", inst)

	var reply ledger.Result
	err := client.client.Call(method, inst, &reply)
	if nil != err {
		return nil, err
	}

	client.trace(title+" Reply", reply)

	return &reply, nil
}
