package registry

// Default returns the built-in catalog. Definitions are struct literals fixed
// at compile time; the returned Registry is immutable by convention and safe
// to share.
func Default() *Registry {
	r := New()
	for _, def := range builtinExamples {
		// Built-in names are unique by construction; a collision here is a
		// programming error worth an immediate panic at startup.
		if err := r.Register(def); err != nil {
			panic(err)
		}
	}
	for _, def := range builtinCategories {
		if err := r.RegisterCategory(def); err != nil {
			panic(err)
		}
	}
	return r
}

var builtinCategories = []CategoryDefinition{
	{
		Name:        "basic",
		Title:       "Basic Operations",
		Description: "Foundational patterns for working with encrypted state: storing, updating, and computing on encrypted integers.",
		Examples: []CategoryExampleRef{
			{Name: "encrypted-counter", Title: "Encrypted Counter", Description: "A counter whose value is stored and incremented under encryption."},
			{Name: "encrypted-arithmetic", Title: "Encrypted Arithmetic", Description: "Addition, subtraction, and multiplication over encrypted operands."},
		},
	},
	{
		Name:        "encryption",
		Title:       "Encrypted Logic",
		Description: "Branch-free control flow over ciphertexts: comparisons, selection, and conditional value movement.",
		Examples: []CategoryExampleRef{
			{Name: "equality-check", Title: "Equality Check", Description: "Comparing two encrypted values without revealing either."},
			{Name: "conditional-transfer", Title: "Conditional Transfer", Description: "Moving an encrypted balance only when an encrypted condition holds."},
		},
	},
	{
		Name:        "access-control",
		Title:       "Access Control",
		Description: "Gating decryption and re-encryption rights to specific accounts.",
		Examples: []CategoryExampleRef{
			{Name: "permission-gate", Title: "Permission Gate", Description: "Granting and revoking per-account access to an encrypted secret."},
		},
	},
}

var builtinExamples = []ExampleDefinition{
	{
		Name:        "encrypted-counter",
		Title:       "Encrypted Counter",
		Description: "A counter whose value is stored and incremented under encryption.",
		Category:    "basic",
		Chapter:     "getting-started",
		ContractContent: `// SPDX-License-Identifier: MIT
pragma solidity ^0.8.24;

import { FHE, euint32, externalEuint32 } from "@fhevm/solidity/lib/FHE.sol";
import { SepoliaConfig } from "@fhevm/solidity/config/ZamaConfig.sol";

contract EncryptedCounter is SepoliaConfig {
    euint32 private _count;

    function increment(externalEuint32 amount, bytes calldata proof) external {
        euint32 delta = FHE.fromExternal(amount, proof);
        _count = FHE.add(_count, delta);
        FHE.allowThis(_count);
        FHE.allow(_count, msg.sender);
    }

    function getCount() external view returns (euint32) {
        return _count;
    }
}
`,
		TestContent: `import { expect } from "chai";
import { ethers, fhevm } from "hardhat";

describe("EncryptedCounter", function () {
  let contract: any;
  let owner: any;

  beforeEach(async function () {
    [owner] = await ethers.getSigners();
    const factory = await ethers.getContractFactory("EncryptedCounter");
    contract = await factory.deploy();
    await contract.waitForDeployment();
  });

  /**
   * @chapter getting-started
   * The counter starts at an encrypted zero. Incrementing it submits an
   * encrypted delta together with a zero-knowledge input proof; the chain
   * never sees the plaintext amount.
   */
  it("increments the counter under encryption", async function () {
    const input = fhevm.createEncryptedInput(await contract.getAddress(), owner.address);
    input.add32(5);
    const encrypted = await input.encrypt();

    await contract.increment(encrypted.handles[0], encrypted.inputProof);

    const handle = await contract.getCount();
    const clear = await fhevm.userDecryptEuint(32, handle, await contract.getAddress(), owner);
    expect(clear).to.equal(5);
  });
});
`,
		DocumentationContent: `The encrypted counter is the smallest complete FHE contract: one encrypted
state variable, one mutation, one read path. The increment amount travels as a
ciphertext plus an input proof, and the stored count is only readable by
accounts the contract has explicitly allowed.`,
	},
	{
		Name:        "encrypted-arithmetic",
		Title:       "Encrypted Arithmetic",
		Description: "Addition, subtraction, and multiplication over encrypted operands.",
		Category:    "basic",
		Chapter:     "getting-started",
		ContractContent: `// SPDX-License-Identifier: MIT
pragma solidity ^0.8.24;

import { FHE, euint32, externalEuint32 } from "@fhevm/solidity/lib/FHE.sol";
import { SepoliaConfig } from "@fhevm/solidity/config/ZamaConfig.sol";

contract EncryptedArithmetic is SepoliaConfig {
    euint32 private _result;

    function add(externalEuint32 a, externalEuint32 b, bytes calldata proof) external {
        _store(FHE.add(FHE.fromExternal(a, proof), FHE.fromExternal(b, proof)));
    }

    function sub(externalEuint32 a, externalEuint32 b, bytes calldata proof) external {
        _store(FHE.sub(FHE.fromExternal(a, proof), FHE.fromExternal(b, proof)));
    }

    function mul(externalEuint32 a, externalEuint32 b, bytes calldata proof) external {
        _store(FHE.mul(FHE.fromExternal(a, proof), FHE.fromExternal(b, proof)));
    }

    function getResult() external view returns (euint32) {
        return _result;
    }

    function _store(euint32 value) private {
        _result = value;
        FHE.allowThis(_result);
        FHE.allow(_result, msg.sender);
    }
}
`,
		TestContent: `import { expect } from "chai";
import { ethers, fhevm } from "hardhat";

describe("EncryptedArithmetic", function () {
  let contract: any;
  let owner: any;

  beforeEach(async function () {
    [owner] = await ethers.getSigners();
    const factory = await ethers.getContractFactory("EncryptedArithmetic");
    contract = await factory.deploy();
    await contract.waitForDeployment();
  });

  /**
   * @chapter getting-started
   * Arithmetic on ciphertexts mirrors plaintext arithmetic operator for
   * operator. Both operands are encrypted client-side and combined on-chain
   * without decryption.
   */
  it("adds two encrypted values", async function () {
    const input = fhevm.createEncryptedInput(await contract.getAddress(), owner.address);
    input.add32(7);
    input.add32(3);
    const encrypted = await input.encrypt();

    await contract.add(encrypted.handles[0], encrypted.handles[1], encrypted.inputProof);

    const handle = await contract.getResult();
    const clear = await fhevm.userDecryptEuint(32, handle, await contract.getAddress(), owner);
    expect(clear).to.equal(10);
  });

  it("multiplies two encrypted values", async function () {
    const input = fhevm.createEncryptedInput(await contract.getAddress(), owner.address);
    input.add32(6);
    input.add32(4);
    const encrypted = await input.encrypt();

    await contract.mul(encrypted.handles[0], encrypted.handles[1], encrypted.inputProof);

    const handle = await contract.getResult();
    const clear = await fhevm.userDecryptEuint(32, handle, await contract.getAddress(), owner);
    expect(clear).to.equal(24);
  });
});
`,
		DocumentationContent: `Encrypted arithmetic composes the same way plaintext arithmetic does. The
contract exposes add, sub, and mul entry points that each take two external
ciphertexts and one shared input proof, store the result, and grant the caller
read access to it.`,
	},
	{
		Name:        "equality-check",
		Title:       "Equality Check",
		Description: "Comparing two encrypted values without revealing either.",
		Category:    "encryption",
		Chapter:     "encrypted-logic",
		ContractContent: `// SPDX-License-Identifier: MIT
pragma solidity ^0.8.24;

import { FHE, ebool, euint32, externalEuint32 } from "@fhevm/solidity/lib/FHE.sol";
import { SepoliaConfig } from "@fhevm/solidity/config/ZamaConfig.sol";

contract EqualityCheck is SepoliaConfig {
    ebool private _lastResult;

    function compare(externalEuint32 a, externalEuint32 b, bytes calldata proof) external {
        euint32 lhs = FHE.fromExternal(a, proof);
        euint32 rhs = FHE.fromExternal(b, proof);
        _lastResult = FHE.eq(lhs, rhs);
        FHE.allowThis(_lastResult);
        FHE.allow(_lastResult, msg.sender);
    }

    function getLastResult() external view returns (ebool) {
        return _lastResult;
    }
}
`,
		TestContent: `import { expect } from "chai";
import { ethers, fhevm } from "hardhat";

describe("EqualityCheck", function () {
  let contract: any;
  let owner: any;

  beforeEach(async function () {
    [owner] = await ethers.getSigners();
    const factory = await ethers.getContractFactory("EqualityCheck");
    contract = await factory.deploy();
    await contract.waitForDeployment();
  });

  /**
   * @chapter encrypted-logic
   * FHE.eq produces an encrypted boolean. Neither operand nor the verdict is
   * visible on-chain; only the caller, granted access via FHE.allow, can
   * decrypt the result.
   */
  it("reports equality of two encrypted values", async function () {
    const input = fhevm.createEncryptedInput(await contract.getAddress(), owner.address);
    input.add32(42);
    input.add32(42);
    const encrypted = await input.encrypt();

    await contract.compare(encrypted.handles[0], encrypted.handles[1], encrypted.inputProof);

    const handle = await contract.getLastResult();
    const clear = await fhevm.userDecryptEbool(handle, await contract.getAddress(), owner);
    expect(clear).to.equal(true);
  });
});
`,
		DocumentationContent: `Comparisons over ciphertexts return encrypted booleans rather than branching.
This example stores the verdict of an encrypted equality test and shows the
access-grant dance required before the caller can decrypt it.`,
	},
	{
		Name:        "conditional-transfer",
		Title:       "Conditional Transfer",
		Description: "Moving an encrypted balance only when an encrypted condition holds.",
		Category:    "encryption",
		Chapter:     "encrypted-logic",
		ContractContent: `// SPDX-License-Identifier: MIT
pragma solidity ^0.8.24;

import { FHE, ebool, euint64, externalEuint64 } from "@fhevm/solidity/lib/FHE.sol";
import { SepoliaConfig } from "@fhevm/solidity/config/ZamaConfig.sol";

contract ConditionalTransfer is SepoliaConfig {
    mapping(address account => euint64 balance) private _balances;

    function deposit(externalEuint64 amount, bytes calldata proof) external {
        euint64 value = FHE.fromExternal(amount, proof);
        _balances[msg.sender] = FHE.add(_balances[msg.sender], value);
        FHE.allowThis(_balances[msg.sender]);
        FHE.allow(_balances[msg.sender], msg.sender);
    }

    function transfer(address to, externalEuint64 amount, bytes calldata proof) external {
        euint64 value = FHE.fromExternal(amount, proof);
        ebool canPay = FHE.le(value, _balances[msg.sender]);

        // Branch-free conditional: transfer value when funded, zero otherwise.
        euint64 moved = FHE.select(canPay, value, FHE.asEuint64(0));

        _balances[msg.sender] = FHE.sub(_balances[msg.sender], moved);
        _balances[to] = FHE.add(_balances[to], moved);

        FHE.allowThis(_balances[msg.sender]);
        FHE.allow(_balances[msg.sender], msg.sender);
        FHE.allowThis(_balances[to]);
        FHE.allow(_balances[to], to);
    }

    function balanceOf(address account) external view returns (euint64) {
        return _balances[account];
    }
}
`,
		TestContent: `import { expect } from "chai";
import { ethers, fhevm } from "hardhat";

describe("ConditionalTransfer", function () {
  let contract: any;
  let alice: any;
  let bob: any;

  beforeEach(async function () {
    [alice, bob] = await ethers.getSigners();
    const factory = await ethers.getContractFactory("ConditionalTransfer");
    contract = await factory.deploy();
    await contract.waitForDeployment();
  });

  /**
   * @chapter encrypted-logic
   * An overdraft attempt must not revert: reverting would leak that the
   * balance was insufficient. FHE.select moves zero instead, so the
   * transaction succeeds either way and observers learn nothing.
   */
  it("transfers zero when the balance is insufficient", async function () {
    const deposit = fhevm.createEncryptedInput(await contract.getAddress(), alice.address);
    deposit.add64(10);
    const encDeposit = await deposit.encrypt();
    await contract.connect(alice).deposit(encDeposit.handles[0], encDeposit.inputProof);

    const transfer = fhevm.createEncryptedInput(await contract.getAddress(), alice.address);
    transfer.add64(100);
    const encTransfer = await transfer.encrypt();
    await contract.connect(alice).transfer(bob.address, encTransfer.handles[0], encTransfer.inputProof);

    const handle = await contract.balanceOf(alice.address);
    const clear = await fhevm.userDecryptEuint(64, handle, await contract.getAddress(), alice);
    expect(clear).to.equal(10);
  });
});
`,
		DocumentationContent: `The conditional transfer is the canonical branch-free FHE pattern. Instead of
reverting on insufficient funds, the contract selects between the requested
amount and zero under encryption, so the outcome of the funding check is never
observable on-chain.`,
	},
	{
		Name:        "permission-gate",
		Title:       "Permission Gate",
		Description: "Granting and revoking per-account access to an encrypted secret.",
		Category:    "access-control",
		Chapter:     "access-control",
		ContractContent: `// SPDX-License-Identifier: MIT
pragma solidity ^0.8.24;

import { FHE, euint32, externalEuint32 } from "@fhevm/solidity/lib/FHE.sol";
import { SepoliaConfig } from "@fhevm/solidity/config/ZamaConfig.sol";

contract PermissionGate is SepoliaConfig {
    address public immutable owner;
    euint32 private _secret;

    error NotOwner();

    constructor() {
        owner = msg.sender;
    }

    modifier onlyOwner() {
        if (msg.sender != owner) revert NotOwner();
        _;
    }

    function setSecret(externalEuint32 value, bytes calldata proof) external onlyOwner {
        _secret = FHE.fromExternal(value, proof);
        FHE.allowThis(_secret);
        FHE.allow(_secret, owner);
    }

    function grantAccess(address account) external onlyOwner {
        FHE.allow(_secret, account);
    }

    function getSecret() external view returns (euint32) {
        return _secret;
    }
}
`,
		TestContent: `import { expect } from "chai";
import { ethers, fhevm } from "hardhat";

describe("PermissionGate", function () {
  let contract: any;
  let owner: any;
  let reader: any;

  beforeEach(async function () {
    [owner, reader] = await ethers.getSigners();
    const factory = await ethers.getContractFactory("PermissionGate");
    contract = await factory.deploy();
    await contract.waitForDeployment();
  });

  /**
   * @chapter access-control
   * Decryption rights are per-ciphertext and per-account. A freshly granted
   * account can decrypt the secret; everyone else holds an opaque handle.
   */
  it("grants permission to a second account", async function () {
    const input = fhevm.createEncryptedInput(await contract.getAddress(), owner.address);
    input.add32(1337);
    const encrypted = await input.encrypt();
    await contract.setSecret(encrypted.handles[0], encrypted.inputProof);

    await contract.grantAccess(reader.address);

    const handle = await contract.getSecret();
    const clear = await fhevm.userDecryptEuint(32, handle, await contract.getAddress(), reader);
    expect(clear).to.equal(1337);
  });

  it("rejects setSecret from a non-owner", async function () {
    const input = fhevm.createEncryptedInput(await contract.getAddress(), reader.address);
    input.add32(1);
    const encrypted = await input.encrypt();

    await expect(
      contract.connect(reader).setSecret(encrypted.handles[0], encrypted.inputProof),
    ).to.be.revertedWithCustomError(contract, "NotOwner");
  });
});
`,
		DocumentationContent: `Access control in FHE contracts happens at two layers: ordinary Solidity
modifiers gate who may write, and per-ciphertext allow lists gate who may
decrypt. This example wires both, with an owner who can extend decryption
rights one account at a time.`,
	},
}
